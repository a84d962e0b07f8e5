package items

import "strings"

// LegacyEnv maps the variable names of earlier deployments onto the
// settings they configure.
var LegacyEnv = map[string]string{
	"ITEMS_TABLE":         "ITEMS_DYNAMODB_TABLENAME",
	"SNS_TOPIC_ARN":       "ITEMS_SNS_TOPICARN",
	"LOCALSTACK_HOSTNAME": "ITEMS_AWS_LOCALSTACKHOSTNAME",
}

// WithLegacyEnv appends a settings variable for every legacy variable in
// env whose replacement is not already set.
func WithLegacyEnv(env []string) []string {
	set := make(map[string]bool, len(env))
	for _, kv := range env {
		set[strings.SplitN(kv, "=", 2)[0]] = true
	}
	out := append([]string(nil), env...)
	for _, kv := range env {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name, ok := LegacyEnv[parts[0]]
		if !ok || set[name] {
			continue
		}
		out = append(out, name+"="+parts[1])
		set[name] = true
	}
	return out
}
