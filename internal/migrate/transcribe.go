package migrate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Transcription is pure: a function of unit content, kind and namespace,
// with no disk access. This keeps it independently testable against
// literal input/output fixtures.

// TranscribeFunction renders a legacy function unit as a shulkerscript
// source file. The command body is kept line-for-line: blank lines and
// `#` comment lines survive unchanged (apart from indentation) so a
// migrated file stays diffable against its legacy original.
func TranscribeFunction(unit SourceUnit, namespace string) string {
	fnPath := strings.TrimSuffix(unit.RelativePath, ".mcfunction")
	name := SanitizeFunctionName(unit.RelativePath)

	var b strings.Builder
	fmt.Fprintf(&b, "// Migrated from \"data/%s/functions/%s\".\n", unit.Namespace, unit.RelativePath)
	fmt.Fprintf(&b, "namespace %q;\n\n", namespace)
	fmt.Fprintf(&b, "#[deobfuscate = %q]\n", fnPath)
	fmt.Fprintf(&b, "fn %s() {\n", name)

	for _, line := range bodyLines(unit.RawContent) {
		if line == "" {
			b.WriteByte('\n')
			continue
		}
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("}\n")
	return b.String()
}

// legacyTag is the parsed shape of a tag JSON file.
type legacyTag struct {
	Replace bool     `json:"replace"`
	Values  []string `json:"values"`
}

// TranscribeTags merges every tag unit of a namespace into one
// declarative import file. Tags sharing a name are merged with their
// value sets united; repeated references are dropped. Units whose body
// cannot be parsed are excluded with a warning, never silently.
func TranscribeTags(namespace string, units []SourceUnit) (string, []Warning) {
	var warnings []Warning

	type mergedTag struct {
		replace bool
		values  []string
		seen    map[string]bool
	}
	var order []string
	tags := make(map[string]*mergedTag)

	for _, unit := range units {
		var parsed legacyTag
		if err := json.Unmarshal(unit.RawContent, &parsed); err != nil {
			warnings = append(warnings, Warning{
				Unit:    unit.ID(),
				Message: fmt.Sprintf("cannot parse tag file, excluded: %v", err),
			})
			continue
		}

		name := strings.TrimSuffix(unit.RelativePath, ".json")
		tag, ok := tags[name]
		if !ok {
			tag = &mergedTag{seen: make(map[string]bool)}
			tags[name] = tag
			order = append(order, name)
		}
		tag.replace = tag.replace || parsed.Replace

		for _, value := range parsed.Values {
			qualified := qualifyReference(value)
			if tag.seen[qualified] {
				continue
			}
			tag.seen[qualified] = true
			tag.values = append(tag.values, qualified)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Migrated function tags for namespace %q.\n", namespace)
	fmt.Fprintf(&b, "namespace %q;\n", namespace)

	for _, name := range order {
		tag := tags[name]
		replace := ""
		if tag.replace {
			replace = " replace"
		}
		fmt.Fprintf(&b, "\ntag %q%s [\n", name, replace)
		for i, value := range tag.values {
			sep := ","
			if i == len(tag.values)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "    %q%s\n", value, sep)
		}
		b.WriteString("]\n")
	}

	return b.String(), warnings
}

// qualifyReference resolves a reference to its namespace-qualified form.
// Unqualified identifiers default to the minecraft namespace, matching
// how the game resolves them. A leading '#' marks a tag reference and is
// kept in front of the qualified id.
func qualifyReference(ref string) string {
	prefix := ""
	if strings.HasPrefix(ref, "#") {
		prefix = "#"
		ref = ref[1:]
	}
	if !strings.Contains(ref, ":") {
		ref = "minecraft:" + ref
	}
	return prefix + ref
}

// bodyLines splits raw content into lines, normalizing CRLF endings and
// dropping a single trailing newline.
func bodyLines(content []byte) []string {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
