// Package gentests runs the generator test suites.
//
// Every test case goes through the same pipeline: the generator is run on the case's script
// (once per generation mode), the generated projects are built by the case's build backend,
// and the build outputs are checked against the case's verification rules. The first failing
// stage fails the case, and no later case is started.
//
// Infrastructure that is not specific to the generator, such as the test tree, subprocess
// handling and the scoped working-directory change, is in the lower-level framework package.
package gentests
