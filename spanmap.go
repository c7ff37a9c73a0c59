package dictscan

// boundary addresses one token edge in normalized-buffer coordinates.
// norm is a rune offset into the scanning string; start selects the leading
// edge of a token, !start the one-past-end edge.
type boundary struct {
	norm  int
	start bool
}

// projection is the per-scan view of one input buffer: the normalized
// scanning string, and the boundary table translating normalized token edges
// back to original-buffer byte offsets.
//
// Normalization is not length-preserving, so the table (never arithmetic on
// lengths) is the only trustworthy bridge between the two coordinate
// systems. Only offsets coinciding with actual token boundaries are present;
// a candidate match whose edges are absent does not align to tokens and is
// rejected.
type projection struct {
	scanning []rune
	bounds   map[boundary]int
}

// project walks the raw tokenization of buffer once, building the scanning
// string and the boundary table in lockstep. Consecutive tokens are exactly
// one separator apart in normalized coordinates, mirroring Tokenizer.Join.
func project(buffer string, normalizer Normalizer, tokenizer Tokenizer) projection {
	proj := projection{
		bounds: make(map[boundary]int),
	}
	sep := []rune(Separator)
	for i, token := range tokenizer.Tokens(buffer) {
		if i > 0 {
			proj.scanning = append(proj.scanning, sep...)
		}
		normalized := normalizer.Normalize(normalizer.Canonicalize(token.Text))
		proj.bounds[boundary{norm: len(proj.scanning), start: true}] = token.Span.Start
		proj.scanning = append(proj.scanning, []rune(normalized)...)
		proj.bounds[boundary{norm: len(proj.scanning), start: false}] = token.Span.End
	}
	return proj
}

// spanFor translates a normalized candidate span into original-buffer byte
// offsets. The candidate covers scanning[startNorm:endNorm]; both edges must
// coincide with token boundaries, otherwise ok is false and the candidate is
// to be discarded.
func (p *projection) spanFor(startNorm, endNorm int) (span Span, ok bool) {
	start, ok := p.bounds[boundary{norm: startNorm, start: true}]
	if !ok {
		return Span{}, false
	}
	end, ok := p.bounds[boundary{norm: endNorm, start: false}]
	if !ok {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}
