package config

// AppName is the binary and project name.
const AppName = "fluxo"

// Description is the one-line summary shown by the banner and version output.
const Description = "a small dependently-typed lambda calculus workbench"
