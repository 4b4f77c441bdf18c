package top

import (
	"errors"
	"regexp"
)

//Section location. A section is a bracketed [ name ] header line plus the
//data lines that follow it, up to the next bracketed header of _any_ name,
//or the end of the content. Header matching is case-insensitive and
//tolerant of whitespace around the brackets and the name.

var anyHeader = regexp.MustCompile(`^\[\p{Zs}*\S+\p{Zs}*\]`)

func headerRegexp(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\[\p{Zs}*` + regexp.QuoteMeta(name) + `\p{Zs}*\]`)
}

// NoSectionError reports that a target section does not occur at all in the
// content, as opposed to occurring with no data lines, or occurring with
// malformed ones. Optional sections swallow it; mandatory ones pass it up.
type NoSectionError struct {
	section string
	deco    []string
}

func (err *NoSectionError) Error() string {
	return sf("top: no [ %s ] section in content", err.section)
}

// Section returns the name of the missing section
func (err *NoSectionError) Section() string { return err.section }

// Decorate adds new information to the error
func (err *NoSectionError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// IsNoSection returns true if err reports an absent section.
func IsNoSection(err error) bool {
	var t *NoSectionError
	return errors.As(err, &t)
}

// FindSections returns the indices of the lines of content holding a
// [ name ] header, plus the indices of every bracketed header of any name.
// If name never occurs, it returns a *NoSectionError.
func FindSections(content []string, name string) (starts, headers []int, err error) {
	target := headerRegexp(name)
	for i, v := range content {
		if !anyHeader.MatchString(v) {
			continue
		}
		headers = append(headers, i)
		if target.MatchString(v) {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		return nil, nil, &NoSectionError{section: name}
	}
	return starts, headers, nil
}

// blockEnd returns the index right after the last data line of the section
// starting at start: the next header of any name, or the end of the content.
// Intervening sections of other names terminate the block, so the next
// occurrence of the same name never does.
func blockEnd(headers []int, start, total int) int {
	for _, h := range headers {
		if h > start {
			return h
		}
	}
	return total
}

// SectionBlocks returns, for each occurrence of [ name ] in content, the
// data lines of that occurrence (header line excluded). Occurrences with no
// data lines yield empty slices. An absent section is a *NoSectionError.
func SectionBlocks(content []string, name string) ([][]string, error) {
	starts, headers, err := FindSections(content, name)
	if err != nil {
		return nil, err
	}
	blocks := make([][]string, 0, len(starts))
	for _, s := range starts {
		blocks = append(blocks, content[s+1:blockEnd(headers, s, len(content))])
	}
	return blocks, nil
}
