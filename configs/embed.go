// Package configs provides the embedded configuration template for lumen.
//
// The template is embedded at build time with //go:embed so it ships in all
// distributions, source builds and binary releases alike.
package configs

import _ "embed"

// UserConfigTemplate is the starter user configuration.
// Created by `lumen config --init` at ~/.config/lumen/config.yaml.
//
//go:embed config.example.yaml
var UserConfigTemplate string
