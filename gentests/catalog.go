package gentests

import (
	"github.com/sharpmake/test-harness/suitedef"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	FunctionalSuiteName = "functional"
	RegressionSuiteName = "regression"

	generatorExe = "Sharpmake.Application.exe"
)

var obsoleteFrameworks = []string{"net472", "net5.0"}

// FunctionalSuiteParams returns the functional tests, which generate and build small projects
// with FastBuild and check the side effects of their custom build steps.
func FunctionalSuiteParams(enableMultiStamping bool) suitedef.SuiteParams {
	var fastBuildArgs []string
	if enableMultiStamping {
		fastBuildArgs = append(fastBuildArgs, "/enableLinkerMultiStamp(true)")
	}
	fastBuild := suitedef.BuildParams{Backend: suitedef.BackendFastBuild}

	return suitedef.SuiteParams{
		Name:     FunctionalSuiteName,
		CasesDir: "Sharpmake.FunctionalTests",
		ToolsDir: "tools",
		Generator: suitedef.ArtifactParams{
			Name:     generatorExe,
			BaseDirs: []string{"Sharpmake.Application/bin"},
			Tokens:   []string{"Debug", "Release"},
		},
		Cases: []suitedef.TestCaseParams{
			{
				Name:         "FastBuildFunctionalTest",
				Script:       "FastBuildFunctionalTest.sharpmake.cs",
				ExtraArgs:    fastBuildArgs,
				Build:        fastBuild,
				Verification: customBuildEventsVerification(),
			},
			{
				Name:   "NoAllFastBuildProjectFunctionalTest",
				Script: "NoAllFastBuildProjectFunctionalTest.sharpmake.cs",
				Build:  fastBuild,
			},
			{
				Name:   "OnlyNeededFastBuildTest",
				Script: "OnlyNeededFastBuildTest.sharpmake.cs",
				Build:  fastBuild,
			},
			{
				Name:      "SharpmakePackageFunctionalTest",
				Script:    "SharpmakePackageFunctionalTest.sharpmake.cs",
				ExtraArgs: []string{"/generateDebugSolution"},
				Build:     suitedef.BuildParams{Backend: suitedef.BackendNone},
			},
		},
	}
}

func customBuildEventsVerification() *suitedef.VerificationParams {
	return &suitedef.VerificationParams{
		OutputDir: "projects/output",
		TargetDirs: []string{
			"debug_fastbuild_noblob_vs2022",
			"debug_fastbuild_vs2022",
			"release_fastbuild_noblob_vs2022",
			"release_fastbuild_vs2022",
		},
		Checks: []suitedef.CheckParams{
			{
				Kind:   suitedef.CheckFileExists,
				SubDir: ldvalue.NewOptionalString("file_copy_destination"),
				Files: []string{
					"dummyfile_to_be_copied_to_buildoutput.txt",
					"main.cpp",
					"postbuildcopysinglefiletest.exe",
					"explicitlyorderedpostbuildtest.exe",
					"explicitlyorderedpostbuildtest.pdb",
				},
			},
			{
				Kind:    suitedef.CheckTextEquals,
				File:    "test_execution_output.txt",
				Content: ldvalue.NewOptionalString("Test successful."),
			},
			{
				Kind:   suitedef.CheckBinarySuffix,
				File:   "postbuildstamptest.exe",
				Suffix: ldvalue.NewOptionalString("_Stamp_Message"),
			},
		},
	}
}

// RegressionSuiteParams returns the regression tests, which run the generator on every sample
// twice, from sources and from the prebuilt assembly, and let it compare its output with the
// sample's reference directory.
func RegressionSuiteParams() suitedef.SuiteParams {
	sample := func(name, script string) suitedef.TestCaseParams {
		return suitedef.TestCaseParams{
			Name:   name,
			Script: script,
			Modes:  []string{suitedef.ModeSources, suitedef.ModeAssembly},
			Regression: &suitedef.RegressionParams{
				ReferenceDir: ldvalue.NewOptionalString("reference"),
				OutputDir:    ldvalue.NewOptionalString("projects"),
				TestMode:     ldvalue.NewOptionalString("Regression"),
			},
			Build: suitedef.BuildParams{Backend: suitedef.BackendNone},
		}
	}

	wcf := sample("CSharpWCF", "CSharpWCF.sharpmake.cs")
	wcf.ProjectRoot = ldvalue.NewOptionalString("codebase")

	multiFramework := sample("DotNetOSMultiFrameworksHelloWorld", "HelloWorld.sharpmake.cs")
	multiFramework.Directory = "NetCore/DotNetOSMultiFrameworksHelloWorld"
	multiFramework.AssemblyDir = ldvalue.NewOptionalString("DotNetOSMultiFrameworksHelloWorld")
	multiFramework.Assembly = ldvalue.NewOptionalString("DotNetOSMultiFrameworksHelloWorld.dll")

	return suitedef.SuiteParams{
		Name:         RegressionSuiteName,
		CasesDir:     "samples",
		RunInCaseDir: true,
		Generator: suitedef.ArtifactParams{
			Name:        generatorExe,
			BaseDirs:    []string{"tmp/bin"},
			Tokens:      []string{"Debug", "Release"},
			ExcludeDirs: obsoleteFrameworks,
		},
		Assemblies: &suitedef.ArtifactParams{
			BaseDirs:    []string{"tmp/samples"},
			Tokens:      []string{"Debug", "Release"},
			ExcludeDirs: obsoleteFrameworks,
		},
		Cases: []suitedef.TestCaseParams{
			sample("ConfigureOrder", "main.sharpmake.cs"),
			sample("CPPCLI", "CLRTest.sharpmake.cs"),
			sample("CSharpHelloWorld", "HelloWorld.sharpmake.cs"),
			sample("HelloWorld", "HelloWorld.sharpmake.cs"),
			sample("HelloLinux", "HelloLinux.Main.sharpmake.cs"),
			sample("CSharpVsix", "CSharpVsix.sharpmake.cs"),
			wcf,
			sample("CSharpImports", "CSharpImports.sharpmake.cs"),
			sample("PackageReferences", "PackageReferences.sharpmake.cs"),
			sample("SimpleExeLibDependency", "SimpleExeLibDependency.sharpmake.cs"),
			multiFramework,
		},
	}
}

// BuiltInSuiteParams returns a suite by name, or false if there is no such built-in suite.
func BuiltInSuiteParams(name string, enableMultiStamping bool) (suitedef.SuiteParams, bool) {
	switch name {
	case FunctionalSuiteName:
		return FunctionalSuiteParams(enableMultiStamping), true
	case RegressionSuiteName:
		return RegressionSuiteParams(), true
	default:
		return suitedef.SuiteParams{}, false
	}
}
