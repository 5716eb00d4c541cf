// Package templates manages note templates with placeholder substitution.
//
// The registry is seeded from a builtin table and optionally overlaid
// by markdown files from a templates directory. Substitution never
// fails: unresolved placeholders are stripped.
package templates

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultName = "Basic"

var placeholderRe = regexp.MustCompile(`\{[^{}]*\}`)

// Registry holds the available note templates. Lookups and reloads are
// safe for concurrent use; reloads swap the whole table atomically
// from the caller's point of view.
type Registry struct {
	mu  sync.RWMutex
	m   map[string]string
	dir string
}

// New returns a registry seeded from the builtin table, overlaid by
// any *.md files found in dir. An empty dir keeps builtins only.
func New(dir string) *Registry {
	r := &Registry{dir: dir}
	r.Reload()
	return r
}

// Names returns all template names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := slices.Collect(maps.Keys(r.m))
	slices.Sort(names)
	return names
}

// Content returns the skeleton for a template, falling back to the
// default template for unknown names.
func (r *Registry) Content(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.m[name]; ok {
		return c
	}
	return r.m[defaultName]
}

// Format substitutes the named placeholders into a template. It never
// fails: placeholders without a value are removed from the output.
func (r *Registry) Format(name string, vars map[string]string) string {
	content := r.Content(name)
	return placeholderRe.ReplaceAllStringFunc(content, func(ph string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(ph, "{"), "}")
		if v, ok := vars[key]; ok {
			return v
		}
		return ""
	})
}

// Reload re-seeds the registry from builtins plus the directory. The
// new table replaces the old one atomically.
func (r *Registry) Reload() {
	m := builtinTemplates()
	if r.dir != "" {
		loadDir(r.dir, m)
	}
	r.mu.Lock()
	r.m = m
	r.mu.Unlock()
	slog.Debug("Templates loaded", "count", len(m))
}

// Watch reloads the registry whenever the templates directory changes,
// until ctx is canceled. It returns immediately when no directory is
// configured.
func (r *Registry) Watch(ctx context.Context) error {
	if r.dir == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch templates: %w", err)
	}
	if err := watcher.Add(r.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch templates %s: %w", r.dir, err)
	}
	go func() {
		defer watcher.Close()
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				// coalesce bursts of events into one reload
				pending = time.After(500 * time.Millisecond)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("Template watcher error", "error", err)
			case <-pending:
				pending = nil
				r.Reload()
			}
		}
	}()
	return nil
}

// loadDir merges markdown files from dir into m. The file name, minus
// extension, with underscores as spaces and title-cased, becomes the
// template name.
func loadDir(dir string, m map[string]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Could not read templates directory", "dir", dir, "error", err)
		}
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			slog.Warn("Could not read template file", "file", e.Name(), "error", err)
			continue
		}
		m[NameFromFile(e.Name())] = string(data)
	}
}

// NameFromFile converts a template file name into its display name:
// "daily_log.md" becomes "Daily Log".
func NameFromFile(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	words := strings.Fields(strings.ReplaceAll(base, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// Overview builds the welcome document listing all templates with a
// short preview each.
func (r *Registry) Overview(author string, now time.Time) string {
	if author == "" {
		author = "Your Name"
	}
	date := now.Format("2006-01-02 15:04")
	names := r.Names()
	var b strings.Builder
	fmt.Fprintf(&b, "# HUD Notes - Available Templates\n\n")
	fmt.Fprintf(&b, "**Author:** %s\n**Date:** %s\n**Templates Available:** %d\n\n---\n\n", author, date, len(names))
	b.WriteString("## Available Templates\n\n")
	for i, name := range names {
		formatted := r.Format(name, map[string]string{
			"title":  "Example " + name,
			"author": author,
			"date":   date,
		})
		lines := strings.Split(formatted, "\n")
		if len(lines) > 8 {
			lines = append(lines[:8], "[... rest of template ...]")
		}
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, name)
		fmt.Fprintf(&b, "**Preview:**\n```markdown\n%s\n```\n\n---\n\n", strings.Join(lines, "\n"))
	}
	b.WriteString("*Welcome to HUD Notes! This overview will be replaced when you create your first note.*\n")
	return b.String()
}

func builtinTemplates() map[string]string {
	return map[string]string{
		"Basic": "# {title}\n\n**Author:** {author}\n**Date:** {date}\n\n---\n\n",

		"Meeting": `# {title}

**Date:** {date}
**Attendees:**
**Agenda:**

---

## Notes

## Action Items
- [ ]

`,

		"Daily Log": `# {title}

**Date:** {date}

---

## Today's Goals
- [ ]

## Completed

## Notes

## Tomorrow
- [ ]

`,

		"Code Review": `# {title}

**Author:** {author}
**Date:** {date}
**Repository:**
**Branch:**

---

## Changes

## Issues Found

## Recommendations

`,

		"Ctf Writeup": `# {title}

**Author:** {author}
**Date:** {date}
**Challenge:**
**Category:**
**Points:**

---

## Challenge Description

## Solution

### Reconnaissance

### Exploitation

### Flag

## Lessons Learned

`,

		"Class Notes": `# {title}

**Date:** {date}
**Course:**
**Professor:**
**Topic:**

---

## Key Concepts

## Notes

## Important Formulas/Code

## Questions/Clarifications

## Action Items
- [ ]

`,

		"Study Session": `# {title}

**Date:** {date}
**Subject:**
**Duration:**
**Goal:**

---

## Topics Covered

## What I Learned

## Still Need to Review

## Next Session Plan

`,

		"Project Planning": `# {title}

**Author:** {author}
**Date:** {date}
**Project:**
**Deadline:**

---

## Objectives

## Requirements

## Timeline

## Resources Needed

## Risks/Concerns

## Next Steps
- [ ]

`,

		"Bug Report": `# {title}

**Author:** {author}
**Date:** {date}
**Severity:**
**Priority:**

---

## Description

## Steps to Reproduce

1.
2.
3.

## Expected Behavior

## Actual Behavior

## Environment

## Additional Notes

`,

		"Powershell Script": `# {title}

**Author:** {author}
**Date:** {date}
**Purpose:**
**Requirements:**

---

## Script Overview

## Parameters

## Usage Examples

## Script Code

` + "```powershell\n# PowerShell script content here\n```" + `

## Notes

`,

		"Batch Script": `# {title}

**Author:** {author}
**Date:** {date}
**Purpose:**
**Requirements:**

---

## Script Overview

## Usage

## Script Code

` + "```batch\n@echo off\nREM Batch script content here\n```" + `

## Notes

`,
	}
}

// Descriptions for the template picker.
var descriptions = map[string]string{
	"Basic":             "Simple note with title, author, and date",
	"Meeting":           "Meeting notes with attendees, agenda, and action items",
	"Daily Log":         "Daily planning with goals, completed tasks, and reflections",
	"Code Review":       "Code review checklist with repository and branch info",
	"Ctf Writeup":       "Capture The Flag challenge documentation",
	"Class Notes":       "Academic note-taking with structured sections",
	"Study Session":     "Study planning and progress tracking",
	"Project Planning":  "Project management with timelines and resources",
	"Bug Report":        "Bug tracking and resolution workflow",
	"Powershell Script": "Windows PowerShell script documentation",
	"Batch Script":      "Windows batch file documentation",
}

// Description returns a short blurb for a template.
func Description(name string) string {
	if d, ok := descriptions[name]; ok {
		return d
	}
	return "Custom template"
}
