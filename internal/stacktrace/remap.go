package stacktrace

// Remap resolves every located record through loc. Records keep their
// order; unmapped ones keep the generated location.
func Remap(records []Record, loc Locator, r *Resolver) []ResolvedFrame {
	return remap(records, loc, r, frameOptions{})
}

type frameOptions struct {
	codeFrames           bool
	replaceTabsWithSpace bool
}

func remap(records []Record, loc Locator, r *Resolver, opts frameOptions) []ResolvedFrame {
	frames := make([]ResolvedFrame, 0, len(records))
	for _, rec := range records {
		f := ResolvedFrame{Message: rec.Message, Severity: rec.Type}
		if !rec.HasLocation() {
			frames = append(frames, f)
			continue
		}
		f.File, f.Line, f.Column = rec.File, rec.Line, max(rec.Column, 1)
		if r != nil {
			if pos, ok := r.Resolve(rec.File, rec.Line, f.Column, loc); ok {
				f.File, f.Line, f.Column = pos.File, pos.Line, pos.Column
				if opts.codeFrames {
					if content, ok := r.SourceContent(pos); ok {
						f.Code = CodeFrame(content, pos.Line, pos.Column, opts.replaceTabsWithSpace)
					}
				}
			}
		}
		frames = append(frames, f)
	}
	return frames
}

func recordFiles(records []Record) []string {
	files := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.HasLocation() {
			files = append(files, rec.File)
		}
	}
	return files
}
