package gentests

type hostTools struct {
	fastBuildDir   string
	fastBuildExe   string
	buildScript    string
	scriptLauncher []string
}

var windowsTools = hostTools{
	fastBuildDir:   "Windows-x64",
	fastBuildExe:   "FBuild.exe",
	buildScript:    "build.bat",
	scriptLauncher: []string{"cmd", "/c"},
}

// Keyed by runtime.GOOS; any other platform uses windowsTools.
var hostToolsByPlatform = map[string]hostTools{
	"linux": {
		fastBuildDir:   "Linux-x64",
		fastBuildExe:   "fbuild",
		buildScript:    "build.sh",
		scriptLauncher: []string{"sh"},
	},
	"darwin": {
		fastBuildDir:   "OSX-x64",
		fastBuildExe:   "FBuild",
		buildScript:    "build.sh",
		scriptLauncher: []string{"sh"},
	},
	"windows": windowsTools,
}

func toolsForPlatform(goos string) hostTools {
	if t, ok := hostToolsByPlatform[goos]; ok {
		return t
	}
	return windowsTools
}
