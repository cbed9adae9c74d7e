package main

import "github.com/AustralianCyberSecurityCentre/azul-rmdup.git/cmd"

func main() {
	cmd.Execute()
}
