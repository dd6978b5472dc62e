// Package filekind defines the script file types recognized by shebangfmt.
package filekind

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind represents the interpreter family of a script file.
type Kind string

const (
	// KindShell covers POSIX and csh-family shell scripts.
	KindShell Kind = "shell"
	// KindPython covers Python scripts.
	KindPython Kind = "python"
	// KindPerl covers Perl scripts and test files.
	KindPerl Kind = "perl"
	// KindRuby covers Ruby scripts.
	KindRuby Kind = "ruby"
	// KindNode covers JavaScript and TypeScript run as scripts.
	KindNode Kind = "node"
	// KindPHP covers PHP CLI scripts.
	KindPHP Kind = "php"
	// KindMake covers makefiles, which some tools run via a shebang.
	KindMake Kind = "make"
	// KindScript covers the remaining shebang-capable script types
	// (awk, sed, lua, PowerShell, Elixir, systemtap, and friends).
	KindScript Kind = "script"
	// KindUnknown indicates an unrecognized file type.
	KindUnknown Kind = "unknown"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsShell returns true if this kind is a shell-family script.
func (k Kind) IsShell() bool {
	return k == KindShell
}

// AllKinds returns all defined file kinds.
func AllKinds() []Kind {
	return []Kind{
		KindShell,
		KindPython,
		KindPerl,
		KindRuby,
		KindNode,
		KindPHP,
		KindMake,
		KindScript,
		KindUnknown,
	}
}

// extensionKinds maps recognized extensions (without the leading dot) to
// their interpreter family. The set follows the file types that commonly
// carry a shebang line.
var extensionKinds = map[string]Kind{
	// https://en.wikipedia.org/wiki/Shell_script
	"sh": KindShell, "bash": KindShell, "csh": KindShell, "fish": KindShell,
	"ksh": KindShell, "tcsh": KindShell, "zsh": KindShell,
	// https://bats-core.readthedocs.io
	"bats": KindShell,
	// https://en.wikipedia.org/wiki/Common_Gateway_Interface
	"cgi": KindShell,
	// https://www.debian.org/doc/debian-policy/ch-maintainerscripts.html
	"postinst": KindShell, "postrm": KindShell, "preinst": KindShell, "prerm": KindShell,
	// https://www.slackwiki.com/Writing_A_SlackBuild_Script
	"SlackBuild": KindShell,
	// https://docs.python.org/3/using/unix.html#miscellaneous
	"py": KindPython,
	// https://perldoc.perl.org/perlrun#Location-of-Perl
	"pl": KindPerl, "t": KindPerl, "perl": KindPerl,
	// https://www.ruby-lang.org
	"rb": KindRuby,
	// https://nodejs.org/en/learn/command-line/run-nodejs-scripts-from-the-command-line
	"js": KindNode, "ts": KindNode,
	// https://www.php.net/manual/en/features.commandline.usage.php
	"php": KindPHP, "php3": KindPHP, "php4": KindPHP, "php5": KindPHP,
	// https://en.wikipedia.org/wiki/Make_(software)
	"mk": KindMake,
	// https://en.wikipedia.org/wiki/AWK
	"awk": KindScript,
	// https://www.gnu.org/software/sed
	"sed": KindScript,
	// https://www.lua.org
	"lua": KindScript,
	// https://dlang.org/rdmd.html
	"d": KindScript,
	// https://elixir-lang.org
	"exs": KindScript,
	// https://openjdk.org/jeps/330#Shebang_files
	"java": KindScript,
	// https://github.com/Kotlin/KEEP/blob/main/proposals/KEEP-0075-scripting-support.md
	"kts": KindScript,
	// https://learn.microsoft.com/en-us/powershell/module/microsoft.powershell.core/about/about_comments#shebang
	"ps1": KindScript,
	// https://sourceware.org/systemtap/SystemTap_Beginners_Guide/useful-systemtap-scripts.html
	"stp": KindScript,
}

// filenameKinds maps exact filenames (no extension) to their kind.
var filenameKinds = map[string]Kind{
	"Makefile":    KindMake,
	"GNUmakefile": KindMake,
}

// Detect classifies a path by its filename.
func Detect(path string) Kind {
	name := filepath.Base(path)
	if kind, ok := filenameKinds[name]; ok {
		return kind
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return KindUnknown
	}
	if kind, ok := extensionKinds[ext]; ok {
		return kind
	}
	return KindUnknown
}

// IsScriptFile returns true if the filename is a recognized script file.
func IsScriptFile(name string) bool {
	return Detect(name) != KindUnknown
}

// Extensions returns the recognized file extensions, sorted, without the
// leading dot. Consumed by the plugin file-matching metadata.
func Extensions() []string {
	out := make([]string, 0, len(extensionKinds))
	for ext := range extensionKinds {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Filenames returns the recognized exact filenames, sorted.
func Filenames() []string {
	out := make([]string, 0, len(filenameKinds))
	for name := range filenameKinds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
