// Command winapp2trim reduces a winapp2.ini cleanup ruleset to the
// entries that apply to the current machine.
package main

func main() {
	execute()
}
