// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests.
//
// The general model is:
//
// 1. The test harness drives external tools as blocking child processes. Every process is
// described by a Command and started through a ProcessRunner, which only reports the exit
// code; a process that cannot be started at all is reported as an error.
//
// 2. The process working directory is the one piece of global state that tests touch. It is
// only ever changed through WithWorkingDir, which restores it on every exit path.
//
// 3. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results, including the exit code that a failure should produce.
//
// The domain-specific code that knows what is being tested is responsible for deciding which
// tools to run, in which directories, and what their outputs should look like.
package framework
