package filter

import (
	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/prom"
	"github.com/tidwall/gjson"
)

// SelectKey narrows the dedupe key of a json line to the value at Path.
// Lines that are not json, or do not contain Path, keep the whole line as key.
type SelectKey struct {
	Path string
}

func (p *SelectKey) GetName() string { return "SelectKey" }

func (p *SelectKey) LineMod(line *Line) (string, *Line) {
	if !gjson.ValidBytes(line.Raw) {
		prom.DedupeKeyMisses.Inc()
		return "", line
	}
	res := gjson.GetBytes(line.Raw, p.Path)
	if !res.Exists() {
		prom.DedupeKeyMisses.Inc()
		return "", line
	}
	if res.Index > 0 {
		// slice the original bytes rather than copy
		line.Key = line.Raw[res.Index : res.Index+len(res.Raw)]
	} else {
		line.Key = []byte(res.Raw)
	}
	return "", line
}
