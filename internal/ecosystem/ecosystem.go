// Package ecosystem identifies which software ecosystems are present in
// a working directory by probing for their canonical manifest files.
package ecosystem

// Ecosystem represents a language/build-tool context identified by a
// characteristic manifest file.
type Ecosystem string

const (
	// Unknown indicates the ecosystem couldn't be recognized.
	Unknown Ecosystem = "Unknown"
	// R is declared but has no detection rule or hooks.
	R Ecosystem = "R"
	// Javascript indicates a Node.js project (has package.json).
	Javascript Ecosystem = "Javascript"
	// Typescript indicates a TypeScript project (has tsconfig.json).
	Typescript Ecosystem = "Typescript"
	// Haskell indicates a Cabal project (has *.cabal).
	Haskell Ecosystem = "Haskell"
	// D indicates a Dub project (has dub.json).
	D Ecosystem = "D"
	// Rust indicates a Cargo project (has Cargo.toml).
	Rust Ecosystem = "Rust"
	// Python indicates a pip project (has requirements.txt).
	Python Ecosystem = "Python"
	// Go indicates a Go module (has go.mod).
	Go Ecosystem = "Go"
	// Php indicates a Composer project (has composer.json).
	Php Ecosystem = "Php"
	// Ruby indicates a Bundler project (has Gemfile).
	Ruby Ecosystem = "Ruby"
	// CMake indicates a CMake project (has CMakeLists.txt).
	CMake Ecosystem = "CMake"
	// CSharp indicates a .NET project (has *.csproj).
	CSharp Ecosystem = "CSharp"
	// Maven indicates a Maven project (has pom.xml).
	Maven Ecosystem = "Maven"
	// Kotlin indicates a Kotlin Gradle project (has settings.gradle.kts).
	Kotlin Ecosystem = "Kotlin"
	// Gradle indicates a Groovy Gradle project (has settings.gradle).
	Gradle Ecosystem = "Gradle"
	// Swift indicates a SwiftPM project (has Package.swift).
	Swift Ecosystem = "Swift"
	// Dart indicates a pub project (has pubspec.yaml).
	Dart Ecosystem = "Dart"
	// Elixir indicates a Mix project (has mix.exs).
	Elixir Ecosystem = "Elixir"
)

// Manifest file patterns, one per detectable ecosystem.
const (
	CSProjPattern  = "*.csproj"
	MavenManifest  = "pom.xml"
	RustManifest   = "Cargo.toml"
	GoManifest     = "go.mod"
	PhpManifest    = "composer.json"
	NodeManifest   = "package.json"
	CMakeManifest  = "CMakeLists.txt"
	ElixirManifest = "mix.exs"
	RubyManifest   = "Gemfile"
	DartManifest   = "pubspec.yaml"
	KotlinManifest = "settings.gradle.kts"
	GradleManifest = "settings.gradle"
	SwiftManifest  = "Package.swift"
	PythonManifest = "requirements.txt"
	TSManifest     = "tsconfig.json"
	CabalPattern   = "*.cabal"
	DubManifest    = "dub.json"
)

// Rule pairs an ecosystem with the manifest pattern that signals its
// presence. Glob marks patterns that must be expanded rather than
// stat'd directly.
type Rule struct {
	Ecosystem Ecosystem
	Pattern   string
	Glob      bool
}

// rules is the ordered detection registry. Iteration order here is the
// detection order, and each ecosystem appears exactly once.
var rules = []Rule{
	{Rust, RustManifest, false},
	{Typescript, TSManifest, false},
	{Haskell, CabalPattern, true},
	{D, DubManifest, true},
	{Javascript, NodeManifest, false},
	{CSharp, CSProjPattern, true},
	{Maven, MavenManifest, false},
	{Go, GoManifest, false},
	{Ruby, RubyManifest, false},
	{Dart, DartManifest, false},
	{Gradle, GradleManifest, false},
	{Kotlin, KotlinManifest, false},
	{Swift, SwiftManifest, false},
	{Php, PhpManifest, false},
	{CMake, CMakeManifest, false},
	{Elixir, ElixirManifest, false},
	{Python, PythonManifest, false},
}

// Rules returns the ordered detection registry.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// All returns every detectable ecosystem in registry order.
func All() []Ecosystem {
	out := make([]Ecosystem, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Ecosystem)
	}
	return out
}

// String returns the canonical ecosystem name.
func (e Ecosystem) String() string {
	return string(e)
}

// Manifest returns the manifest pattern registered for the ecosystem,
// or the empty string if it has no detection rule.
func (e Ecosystem) Manifest() string {
	for _, r := range rules {
		if r.Ecosystem == e {
			return r.Pattern
		}
	}
	return ""
}

// Parse maps a canonical name back to its Ecosystem. Unrecognized
// input parses to Unknown, so Parse(e.String()) == e round-trips for
// every declared ecosystem.
func Parse(name string) Ecosystem {
	switch name {
	case "R":
		return R
	case "Javascript":
		return Javascript
	case "Typescript":
		return Typescript
	case "Haskell":
		return Haskell
	case "D":
		return D
	case "Rust":
		return Rust
	case "Python":
		return Python
	case "Go":
		return Go
	case "Php":
		return Php
	case "Ruby":
		return Ruby
	case "CMake":
		return CMake
	case "CSharp":
		return CSharp
	case "Maven":
		return Maven
	case "Kotlin":
		return Kotlin
	case "Gradle":
		return Gradle
	case "Swift":
		return Swift
	case "Dart":
		return Dart
	case "Elixir":
		return Elixir
	default:
		return Unknown
	}
}
