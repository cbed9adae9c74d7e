package filter

import "github.com/AustralianCyberSecurityCentre/azul-rmdup.git/dedupe"

type FilterDuplicates struct {
	Seen dedupe.Seen
}

func (p *FilterDuplicates) GetName() string { return "FilterDuplicates" }

// LineMod drops the line if its key has already been emitted.
func (p *FilterDuplicates) LineMod(line *Line) (string, *Line) {
	if p.Seen.Insert(line.Key) {
		return "", line
	}
	return "skipped", nil
}
