package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	items "github.com/asecurityteam/items/pkg"
	"github.com/asecurityteam/settings/v2"
)

func main() {
	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(items.Help())
		return
	}

	ctx := context.Background()
	source, err := settings.NewEnvSource(items.WithLegacyEnv(os.Environ()))
	if err != nil {
		panic(err.Error())
	}
	st := &items.Starter{
		Mode:   os.Getenv("ITEMS_MODE"),
		Target: os.Getenv("ITEMS_FUNCTION"),
	}
	if err := st.Start(ctx, source); err != nil {
		panic(err.Error())
	}
}
