package main

import (
	"fmt"
	"os"

	"github.com/cemoktra/arggo"
)

type serverConfig struct {
	Host string
	Port int
}

func main() {
	p := arggo.NewParser()
	p.AddMandatory(arggo.Abbr("config", "c"), "server configuration file (json/yaml/toml)")
	p.Parse()

	// the option's payload is a path; reading it as a File decodes the
	// file and keeps it fresh through fsnotify
	file, err := arggo.Value[*arggo.File[serverConfig, arggo.EnableLiveUpdate]](p, "config")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("%+v\n", *file.Get())
	for range file.UpdateEvents() {
		fmt.Printf("reloaded: %+v\n", *file.Get())
	}
}
