package testdata

import (
	"embed"
	"log"
	"path"
	"runtime"
)

// dir of this go module, so tests can load files beneath it
var Dir string

//go:embed lines
var Lines embed.FS

func GetLines(path string) string {
	return string(GetLinesBytes(path))
}

func GetLinesBytes(path string) []byte {
	ret, err := Lines.ReadFile(path)
	if err != nil {
		log.Fatalf("could not load test file %v: %v", path, err)
	}
	return ret
}

func init() {
	_, filename, _, _ := runtime.Caller(0)
	Dir = path.Dir(filename)
}
