// Package publisher contains the SNS backed implementation of the
// domain.Publisher. A Publisher is bound to exactly one topic.
package publisher
