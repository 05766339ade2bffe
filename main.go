// The SIAUGESMAT container entrypoint: every container in the deployment
// starts here, waits for its role's dependencies, then becomes its role's
// long-running process.
package main

import "siaugesmat-entrypoint/cmd"

func main() {
	cmd.Execute()
}
