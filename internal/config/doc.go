// Package config loads runtime configuration for the userseed CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed USERSEED_, after loading a dotenv file
//     (-e/-env, or ./.env when present). Variables already set in the
//     process environment win over the dotenv file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-o string   organization name
//	-u string   organization URL
//	-l int      generated password length
//	-s          include symbols in generated passwords
//	-x          exclude ambiguous characters (I l 1 O 0 o)
//	-d string   directory for exported files
//	-hash       bcrypt passwords in the identity-provider export
//	-days int   deletion delay of the generated Bitwarden Sends
//	-log string log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "organization_name": "Acme",
//	  "organization_url": "https://acme.example",
//	  "password": {"length": 16, "symbols": true, "exclude_ambiguous": true},
//	  "output_dir": "exports",
//	  "hash_passwords": false,
//	  "send_deletion_days": 7,
//	  "log_level": "info"
//	}
//
// Omitted JSON keys keep the value from the previous layer.
package config
