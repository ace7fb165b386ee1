package catalog

import "github.com/breathe-sh/breathe/internal/ecosystem"

// The tables below are declarative data: one ordered hook list per
// ecosystem. Order is semantically significant (builds run before the
// tests that need their artifacts) and must not be rearranged.

func rustHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Rust,
			Description: "Checking the configuration",
			Success:     "Project is valid",
			Failure:     "Project not valid",
			LogFile:     "project.log",
			Command:     "cargo verify-project",
		},
		{
			Ecosystem:   ecosystem.Rust,
			Description: "Checking build capability",
			Success:     "Can build the project",
			Failure:     "Cargo check detect failure",
			LogFile:     "check.log",
			Command:     "cargo check",
		},
		{
			Ecosystem:   ecosystem.Rust,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "cargo audit",
		},
		{
			Ecosystem:   ecosystem.Rust,
			Description: "Checks for formatting issues in your Rust code",
			Success:     "Code format standard respected",
			Failure:     "Code format standard not respected",
			LogFile:     "fmt.log",
			Command:     "cargo fmt --check",
		},
		{
			Ecosystem:   ecosystem.Rust,
			Description: "Checks for linting issues and suggests code improvements",
			Success:     "No warning founded",
			Failure:     "Warnings founded",
			LogFile:     "clippy.log",
			Command:     "cargo clippy -- -D clippy::all -W warnings -D clippy::pedantic -D clippy::nursery -A clippy::multiple_crate_versions",
		},
		{
			Ecosystem:   ecosystem.Rust,
			Description: "Testing your project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "cargo test --no-fail-fast",
		},
		{
			Ecosystem:   ecosystem.Rust,
			Description: "Generating documentation for your project",
			Success:     "Documentation generated",
			Failure:     "Failed to generate documentation",
			LogFile:     "doc.log",
			Command:     "cargo doc --no-deps --document-private-items",
		},
		{
			Ecosystem:   ecosystem.Rust,
			Description: "Checking for outdated packages in your project",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			LogFile:     "outdated.log",
			Command:     "cargo outdated",
		},
	}
}

func javascriptHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Javascript,
			Description: "Checking for outdated packages in your project",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			LogFile:     "outdated.log",
			Command:     "npm outdated",
		},
		{
			Ecosystem:   ecosystem.Javascript,
			Description: "Testing your project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "npm run test",
		},
		{
			Ecosystem:   ecosystem.Javascript,
			Description: "Auditing your project",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "npm audit",
		},
		{
			Ecosystem:   ecosystem.Javascript,
			Description: "Checking for code formatting in your project",
			Success:     "Linting passed",
			Failure:     "Lint error found",
			LogFile:     "lint.log",
			Command:     "npm run lint",
		},
	}
}

// typescriptHooks runs the Javascript hooks first, then the
// TypeScript-specific type and formatting checks.
func typescriptHooks() []Hook {
	hooks := javascriptHooks()
	hooks = append(hooks,
		Hook{
			Ecosystem:   ecosystem.Typescript,
			Description: "Checking for type in your project",
			Success:     "Types are valid",
			Failure:     "Type errors found",
			LogFile:     "types.log",
			Command:     "npx tsc --noEmit",
		},
		Hook{
			Ecosystem:   ecosystem.Typescript,
			Description: "Checking for code formatting in your project",
			Success:     "Code is formatted correctly",
			Failure:     "Code formating issues found",
			LogFile:     "fmt.log",
			Command:     "npx prettier --check .",
		},
	)
	return hooks
}

func haskellHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Haskell,
			Description: "Checking for outdated packages in your project",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			LogFile:     "outdated.log",
			Command:     "cabal outdated",
		},
		{
			Ecosystem:   ecosystem.Haskell,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "cabal audit",
		},
		{
			Ecosystem:   ecosystem.Haskell,
			Description: "Running tests for your Haskell project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "cabal test",
		},
	}
}

func dHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.D,
			Description: "Building your project",
			Success:     "Build successful",
			Failure:     "Build failed",
			LogFile:     "build.log",
			Command:     "dub build",
		},
		{
			Ecosystem:   ecosystem.D,
			Description: "Testing your project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "dub test",
		},
	}
}

func mavenHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Maven,
			Description: "Checking for outdated dependencies",
			Success:     "No outdated dependencies found",
			Failure:     "Outdated dependencies found",
			LogFile:     "outdated.log",
			Command:     "mvn dependency:tree",
		},
		{
			Ecosystem:   ecosystem.Maven,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "mvn dependency-check:check",
		},
		{
			Ecosystem:   ecosystem.Maven,
			Description: "Running tests for your Maven project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "mvn test",
		},
		{
			Ecosystem:   ecosystem.Maven,
			Description: "Checking for outdated packages in your project",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			LogFile:     "outdated.log",
			Command:     "mvn versions:display-dependency-updates",
		},
	}
}

// gradleHooks takes the wrapper script name resolved by the shell
// strategy, which is the only platform-conditional command in the
// catalog.
func gradleHooks(wrapper string) []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Gradle,
			Description: "Building your application",
			Success:     "Build successful",
			Failure:     "Build failed",
			LogFile:     "build.log",
			Command:     wrapper + " build",
		},
		{
			Ecosystem:   ecosystem.Gradle,
			Description: "Running unit test",
			Success:     "Test passed",
			Failure:     "Test failed",
			LogFile:     "test.log",
			Command:     wrapper + " test",
		},
		{
			Ecosystem:   ecosystem.Gradle,
			Description: "Running tests for your Gradle project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     wrapper + " test",
		},
	}
}

func kotlinHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Kotlin,
			Description: "Running unit tests",
			Success:     "All tests passed",
			Failure:     "Some tests failed",
			LogFile:     "test.log",
			Command:     "gradle test",
		},
	}
}

func goHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Go,
			Description: "Testing your project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "go test -v",
		},
		{
			Ecosystem:   ecosystem.Go,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "go list -u -m -json all",
		},
	}
}

func pythonHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Python,
			Description: "Checking for outdated packages in your project",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			LogFile:     "outdated.log",
			Command:     "pip list --outdated",
		},
		{
			Ecosystem:   ecosystem.Python,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "pip audit",
		},
	}
}

func phpHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Php,
			Description: "Checking platform requirements",
			Success:     "All requirements are met",
			Failure:     "Missing requirements found",
			LogFile:     "reqs.log",
			Command:     "composer check-platform-reqs",
		},
		{
			Ecosystem:   ecosystem.Php,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "composer audit",
		},
		{
			Ecosystem:   ecosystem.Php,
			Description: "Checking outdated packages",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			LogFile:     "outdated.log",
			Command:     "composer outdated",
		},
		{
			Ecosystem:   ecosystem.Php,
			Description: "Running tests for your PHP project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "composer run test",
		},
	}
}

func rubyHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Ruby,
			Description: "Checking for outdated gems",
			Success:     "No outdated gems found",
			Failure:     "Outdated gems found",
			LogFile:     "outdated.log",
			Command:     "bundle outdated",
		},
		{
			Ecosystem:   ecosystem.Ruby,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "bundle audit",
		},
		{
			Ecosystem:   ecosystem.Ruby,
			Description: "Running tests for your Ruby project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "bundle exec rspec",
		},
	}
}

func cmakeHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.CMake,
			Description: "Generate Makefile",
			Success:     "Makefile generation success.",
			Failure:     "Makefile generation failed",
			LogFile:     "cmake.log",
			Command:     "cmake .",
		},
		{
			Ecosystem:   ecosystem.CMake,
			Description: "Building",
			Success:     "Build success",
			Failure:     "Build failed",
			LogFile:     "make.log",
			Command:     "make",
		},
		{
			Ecosystem:   ecosystem.CMake,
			Description: "Testing",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			LogFile:     "test.log",
			Command:     "make test",
		},
	}
}

func csharpHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.CSharp,
			Description: "Checking for code formatting",
			Success:     "Code formatting is correct",
			Failure:     "Code formatting issues found",
			LogFile:     "format.log",
			Command:     "dotnet format --verify-no-changes",
		},
		{
			Ecosystem:   ecosystem.CSharp,
			Description: "Running unit tests",
			Success:     "All tests passed",
			Failure:     "Some tests failed",
			LogFile:     "test.log",
			Command:     "dotnet test",
		},
		{
			Ecosystem:   ecosystem.CSharp,
			Description: "Building the project",
			Success:     "Build successful",
			Failure:     "Build failed",
			LogFile:     "build.log",
			Command:     "dotnet build",
		},
		{
			Ecosystem:   ecosystem.CSharp,
			Description: "Checking for dependency updates",
			Success:     "Dependencies are up to date",
			Failure:     "Dependency updates available",
			LogFile:     "deps.log",
			Command:     "dotnet restore",
		},
		{
			Ecosystem:   ecosystem.CSharp,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "dotnet audit",
		},
	}
}

func swiftHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Swift,
			Description: "Checking for code formatting",
			Success:     "Code formatting is correct",
			Failure:     "Code formatting issues found",
			LogFile:     "format.log",
			Command:     "swiftformat --lint .",
		},
		{
			Ecosystem:   ecosystem.Swift,
			Description: "Running unit tests",
			Success:     "All tests passed",
			Failure:     "Some tests failed",
			LogFile:     "test.log",
			Command:     "swift test",
		},
		{
			Ecosystem:   ecosystem.Swift,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "swift package audit",
		},
		{
			Ecosystem:   ecosystem.Swift,
			Description: "Building the project",
			Success:     "Build successful",
			Failure:     "Build failed",
			LogFile:     "build.log",
			Command:     "swift build",
		},
		{
			Ecosystem:   ecosystem.Swift,
			Description: "Running integration tests",
			Success:     "All integration tests passed",
			Failure:     "Some integration tests failed",
			LogFile:     "integration.log",
			Command:     "swift test --parallel",
		},
	}
}

func dartHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Dart,
			Description: "Checking for code formatting",
			Success:     "Code formatting is correct",
			Failure:     "Code formatting issues found",
			LogFile:     "format.log",
			Command:     "dart format --set-exit-if-changed",
		},
		{
			Ecosystem:   ecosystem.Dart,
			Description: "Running unit tests",
			Success:     "All tests passed",
			Failure:     "Some tests failed",
			LogFile:     "test.log",
			Command:     "dart test",
		},
		{
			Ecosystem:   ecosystem.Dart,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "dart pub audit",
		},
		{
			Ecosystem:   ecosystem.Dart,
			Description: "Building the project",
			Success:     "Build successful",
			Failure:     "Build failed",
			LogFile:     "build.log",
			Command:     "dart compile exe bin/main.dart",
		},
	}
}

func elixirHooks() []Hook {
	return []Hook{
		{
			Ecosystem:   ecosystem.Elixir,
			Description: "Checking for code formatting",
			Success:     "Code formatting is correct",
			Failure:     "Code formatting issues found",
			LogFile:     "format.log",
			Command:     "mix format --check-formatted",
		},
		{
			Ecosystem:   ecosystem.Elixir,
			Description: "Running unit tests",
			Success:     "All tests passed",
			Failure:     "Some tests failed",
			LogFile:     "test.log",
			Command:     "mix test",
		},
		{
			Ecosystem:   ecosystem.Elixir,
			Description: "Generating documentation",
			Success:     "Documentation generated successfully",
			Failure:     "Documentation generation failed",
			LogFile:     "docs.log",
			Command:     "mix docs",
		},
		{
			Ecosystem:   ecosystem.Elixir,
			Description: "Checking for security vulnerabilities",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			LogFile:     "audit.log",
			Command:     "mix audit",
		},
		{
			Ecosystem:   ecosystem.Elixir,
			Description: "Building the project",
			Success:     "Build successful",
			Failure:     "Build failed",
			LogFile:     "build.log",
			Command:     "mix compile",
		},
	}
}
