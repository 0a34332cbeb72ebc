package main

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	ifndefRe = regexp.MustCompile(`^#ifndef\s+(GL_\w+)\s*$`)
	endifRe  = regexp.MustCompile(`^#endif\s*/\*\s*(GL_\w+)\s*\*/`)
	defineRe = regexp.MustCompile(`^#define\s+(GL_\w+)\s+(0[xX][0-9A-Fa-f]+|-?\d+)[uUlL]*\s*$`)
	protoRe  = regexp.MustCompile(`^GLAPI\s+(.*?)\s*\b(?:GLAPIENTRY|APIENTRY)\s+(gl\w+)\s*\((.*)\)\s*;$`)
	// feature guards (GL_VERSION_1_3, GL_ARB_multitexture) are defined to 1
	// and are not enumerants
	featureRe = regexp.MustCompile(`^GL_(VERSION_\d+_\d+|[A-Z0-9]+_[a-z]\w*)$`)
	commentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// EnumDef is one #define GL_X value token.
type EnumDef struct {
	Feature string
	Name    string
	Value   string
}

// ProtoDef is one GLAPI prototype, with the return type and parameter list
// as written in C.
type ProtoDef struct {
	Feature string
	Name    string
	Return  string
	Params  string
}

// Header holds the declarations of one header in source order.
type Header struct {
	Enums    []*EnumDef
	Protos   []*ProtoDef
	Features []string // feature guards in source order
}

// parseHeader scans a Khronos style header. Declarations between
// "#ifndef GL_X" / "#define GL_X 1" and "#endif /* GL_X */" belong to
// feature GL_X, everything else to def. Declarations with an empty feature
// are dropped.
func parseHeader(r io.Reader, def string) (*Header, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read header")
	}

	h := &Header{}
	feature := def
	for i := 0; i < len(lines); i++ {
		ln := strings.TrimRight(lines[i], " \t\r")
		if m := ifndefRe.FindStringSubmatch(ln); m != nil &&
			i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "#define "+m[1]+" 1" {
			feature = m[1]
			h.Features = append(h.Features, feature)
			i++
			continue
		}
		if m := endifRe.FindStringSubmatch(ln); m != nil && m[1] == feature {
			feature = def
			continue
		}
		if m := defineRe.FindStringSubmatch(ln); m != nil && feature != "" && !featureRe.MatchString(m[1]) {
			v := m[2]
			if strings.HasPrefix(v, "0X") {
				v = "0x" + v[2:]
			}
			h.Enums = append(h.Enums, &EnumDef{Feature: feature, Name: m[1], Value: v})
		}
		if strings.HasPrefix(ln, "GLAPI ") {
			buf := ln
			for !strings.Contains(stripComments(buf), ";") {
				i++
				if i >= len(lines) {
					return nil, errors.Errorf("unterminated prototype %q", ln)
				}
				buf += " " + strings.TrimSpace(lines[i])
			}
			buf = strings.Join(strings.Fields(stripComments(buf)), " ")
			if m := protoRe.FindStringSubmatch(buf); m != nil && feature != "" {
				h.Protos = append(h.Protos, &ProtoDef{Feature: feature, Name: m[2], Return: m[1], Params: m[3]})
			}
		}
	}
	return h, nil
}

func stripComments(s string) string {
	return commentRe.ReplaceAllString(s, "")
}
