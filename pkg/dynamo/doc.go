// Package dynamo contains the DynamoDB backed implementation of the
// domain.ItemStore. Items are stored one per row, keyed by the "id"
// string attribute, with the remaining attributes named after their
// JSON counterparts.
package dynamo
