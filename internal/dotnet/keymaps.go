package dotnet

// Static per-verb rename tables from logical option names to the toolchain's
// flag spellings. Loaded once; never mutated. Declaration order is the order
// flags appear in the assembled command line.

// NewKeyMap covers `dotnet new <template>`.
var NewKeyMap = KeyMap{
	{"name", "--name"},
	{"output", "--output"},
	{"language", "--language"},
	{"dryRun", "--dry-run"},
	{"force", "--force"},
	{"noUpdateCheck", "--no-update-check"},
	{"project", "--project"},
	{"verbosity", "--verbosity"},
}

// BuildKeyMap covers `dotnet build <project>`.
var BuildKeyMap = KeyMap{
	{"configuration", "--configuration"},
	{"framework", "--framework"},
	{"runtime", "--runtime"},
	{"output", "--output"},
	{"noDependencies", "--no-dependencies"},
	{"noIncremental", "--no-incremental"},
	{"noRestore", "--no-restore"},
	{"noLogo", "--nologo"},
	{"selfContained", "--self-contained"},
	{"source", "--source"},
	{"versionSuffix", "--version-suffix"},
	{"verbosity", "--verbosity"},
}

// RunKeyMap covers `dotnet run --project <project>`.
var RunKeyMap = KeyMap{
	{"configuration", "--configuration"},
	{"framework", "--framework"},
	{"runtime", "--runtime"},
	{"launchProfile", "--launch-profile"},
	{"noLaunchProfile", "--no-launch-profile"},
	{"noBuild", "--no-build"},
	{"noDependencies", "--no-dependencies"},
	{"noRestore", "--no-restore"},
	{"force", "--force"},
	{"verbosity", "--verbosity"},
}

// TestKeyMap covers `dotnet test <project>`.
var TestKeyMap = KeyMap{
	{"configuration", "--configuration"},
	{"framework", "--framework"},
	{"runtime", "--runtime"},
	{"blame", "--blame"},
	{"collect", "--collect"},
	{"filter", "--filter"},
	{"logger", "--logger"},
	{"listTests", "--list-tests"},
	{"noBuild", "--no-build"},
	{"noRestore", "--no-restore"},
	{"output", "--output"},
	{"resultsDirectory", "--results-directory"},
	{"settings", "--settings"},
	{"verbosity", "--verbosity"},
}

// PublishKeyMap covers `dotnet publish <project>`.
var PublishKeyMap = KeyMap{
	{"configuration", "--configuration"},
	{"framework", "--framework"},
	{"runtime", "--runtime"},
	{"manifest", "--manifest"},
	{"output", "--output"},
	{"noBuild", "--no-build"},
	{"noDependencies", "--no-dependencies"},
	{"noRestore", "--no-restore"},
	{"noLogo", "--nologo"},
	{"selfContained", "--self-contained"},
	{"force", "--force"},
	{"versionSuffix", "--version-suffix"},
	{"verbosity", "--verbosity"},
}

// AddPackageKeyMap covers `dotnet add <project> package <name>`.
var AddPackageKeyMap = KeyMap{
	{"version", "--version"},
	{"framework", "--framework"},
	{"source", "--source"},
	{"packageDirectory", "--package-directory"},
	{"noRestore", "--no-restore"},
	{"prerelease", "--prerelease"},
}

// FormatKeyMap covers `dotnet format`. The fix* entries are the pre-6.0
// single-verb spellings; on 6.0+ they select the split sub-verbs instead
// (see format.go).
var FormatKeyMap = KeyMap{
	{"diagnostics", "--diagnostics"},
	{"include", "--include"},
	{"exclude", "--exclude"},
	{"check", "--check"},
	{"includeGenerated", "--include-generated"},
	{"severity", "--severity"},
	{"binarylog", "--binarylog"},
	{"report", "--report"},
	{"verbosity", "--verbosity"},
	{"fixWhitespace", "--fix-whitespace"},
	{"fixStyle", "--fix-style"},
	{"fixAnalyzers", "--fix-analyzers"},
}
