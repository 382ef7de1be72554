package common

// AppName is used in the REPL prompt and in log records.
const AppName = "userseed"

// EnvPrefix prefixes every environment variable read by the config loader.
const EnvPrefix = "USERSEED_"
