package items

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// Help generates the environment variable listing for every setting of
// the service.
func Help() string {
	var groups []settings.Group
	for _, c := range []interface{}{
		&runhttp.Component{},
		&AWSComponent{},
		&StoreComponent{},
		&PublisherComponent{},
		&LambdaComponent{},
	} {
		grp, err := settings.GroupFromComponent(c)
		if err != nil {
			continue
		}
		groups = append(groups, grp)
	}
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   SettingsPrefix,
		GroupValues: groups,
	}})
}
