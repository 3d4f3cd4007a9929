package commands

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Compose the Gazebo and ArduPilot SITL environment"
	MsgVersionShort  = "Print version information"
	MsgVersionLong   = "Print detailed version information including commit hash and build date"
	MsgScriptShort   = "Print the profile as a sourceable shell script"
	MsgEnvShort      = "Print the composed values of the profile's variables"
	MsgEnvLong       = "Print final values of every variable the profile writes, composed on top of the current environment. Output is shell exports for --shell unless --format is given."
	MsgShowShort     = "Show what composition changes, variable by variable"
	MsgExecShort     = "Run a command inside the composed environment"
	MsgDoctorShort   = "Check the directories the profile contributes"
	MsgProfilesShort = "List configured profiles"
	MsgHookShort     = "Print the line to add to your shell rc file"
	MsgConfigShort   = "Inspect or create the configuration file"
	MsgConfigShowSh  = "Print the effective configuration as TOML"
	MsgConfigInitSh  = "Write the default configuration to the config path"
	MsgConfigPathSh  = "Print the configuration file path"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"

	// Version output
	MsgVersionFormat = "simenv version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/simenv/config.toml)"
	MsgFlagHome    = "Home directory used to expand $HOME in entries (default $HOME)"
	MsgFlagProfile = "Profile to compose"
	MsgFlagEnvFile = "Read the base environment from a dotenv file, layered over the process environment"
	MsgFlagShell   = "Shell dialect: bash, zsh, sh or fish (default from $SHELL)"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml or dotenv"
	MsgFlagForce   = "Overwrite an existing config file"
	MsgFlagClean   = "Start from an empty environment instead of the process environment"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/script-long.txt
	msgScriptLongRaw string
	MsgScriptLong    = strings.TrimSpace(msgScriptLongRaw)

	//go:embed msgs/script-example.txt
	msgScriptExampleRaw string
	MsgScriptExample    = strings.TrimRight(msgScriptExampleRaw, "\n")

	//go:embed msgs/env-example.txt
	msgEnvExampleRaw string
	MsgEnvExample    = strings.TrimRight(msgEnvExampleRaw, "\n")

	//go:embed msgs/exec-long.txt
	msgExecLongRaw string
	MsgExecLong    = strings.TrimSpace(msgExecLongRaw)

	//go:embed msgs/exec-example.txt
	msgExecExampleRaw string
	MsgExecExample    = strings.TrimRight(msgExecExampleRaw, "\n")

	//go:embed msgs/doctor-long.txt
	msgDoctorLongRaw string
	MsgDoctorLong    = strings.TrimSpace(msgDoctorLongRaw)
)

// Topics holds the `simenv help <topic>` documents
//
//go:embed topics
var Topics embed.FS
