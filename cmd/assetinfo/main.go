/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command assetinfo inspects build-emitted asset manifests. It resolves
// the manifest pair for each requested handle and prints the merged
// metadata, reporting missing or undecodable manifests strictly so build
// pipelines can fail fast.
//
// Handles come from positional arguments and/or a YAML config file:
//
//	dir: /srv/app/assets
//	url: https://cdn.example.com/assets
//	handles:
//	  - editor
//	  - dashboard
//
// Environment variables (optionally from a .env file) provide defaults:
// ASSETSTORE_DIR and ASSETSTORE_URL.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/assetstore"
	aserrors "github.com/suparena/assetstore/errors"
	"github.com/suparena/assetstore/manifest"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	dirFlag     = flag.String("dir", "", "Asset build directory (default $ASSETSTORE_DIR)")
	urlFlag     = flag.String("url", "", "Asset base URL (default $ASSETSTORE_URL)")
	configFlag  = flag.String("config", "", "YAML config file with dir/url/handles")
	strictFlag  = flag.Bool("strict", false, "Treat missing manifests as errors, not defaults")
)

// config is the YAML config file shape.
type config struct {
	Dir     string   `yaml:"dir"`
	URL     string   `yaml:"url"`
	Handles []string `yaml:"handles"`
}

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := assetstore.GetVersionInfo()
		fmt.Printf("AssetStore assetinfo version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg := config{
		Dir: os.Getenv("ASSETSTORE_DIR"),
		URL: os.Getenv("ASSETSTORE_URL"),
	}
	if *configFlag != "" {
		data, err := os.ReadFile(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "assetinfo: reading config: %v\n", err)
			os.Exit(1)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "assetinfo: parsing config: %v\n", err)
			os.Exit(1)
		}
	}
	if *dirFlag != "" {
		cfg.Dir = *dirFlag
	}
	if *urlFlag != "" {
		cfg.URL = *urlFlag
	}

	handles := append(cfg.Handles, flag.Args()...)
	if cfg.Dir == "" || len(handles) == 0 {
		fmt.Fprintln(os.Stderr, "usage: assetinfo -dir <assets dir> [-url <base url>] [-config <file>] [-strict] <handle>...")
		os.Exit(2)
	}

	res := manifest.New(cfg.Dir, cfg.URL)
	failed := false

	for _, handle := range handles {
		asset, err := res.Lookup(handle)
		if err != nil {
			if *strictFlag || aserrors.IsManifestInvalid(err) {
				fmt.Fprintf(os.Stderr, "assetinfo: %v\n", err)
				failed = true
			}
		}
		out, _ := json.MarshalIndent(struct {
			Handle string `json:"handle"`
			Src    string `json:"src"`
			*manifest.Asset
		}{handle, res.ScriptURL(handle), asset}, "", "  ")
		fmt.Println(string(out))
	}

	if failed {
		os.Exit(1)
	}
}
