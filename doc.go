// Package kconfig models, parses and transforms Kconfig-style configuration
// files, the KEY=value / "# KEY is not set" text format used by the Linux
// kernel, Buildroot and similar build systems. It supports round-trip
// parsing and re-serialization, programmatic construction and set-theoretic
// operations (merge, override, diff) over configs while preserving source
// ordering, comments, blank lines and provenance (source file, line number).
//
// The package deliberately does not evaluate Kconfig semantics: there is no
// "depends on"/"select" resolution, no menu system and no dependency graph.
// It is purely a textual data-format library: parse, hold, transform,
// render.
//
// # Parsing
//
// Parsing is lenient by contract. Malformed lines are preserved verbatim as
// comment entries and never fail the parse; the key prefix (CONFIG_, BR2_ or
// any ALLCAPS_ run) is inferred from the first assignment line unless forced
// with WithPrefix:
//
//	cfg, err := kconfig.ParseString(text, kconfig.FromSource(".config"))
//	if err != nil { ... }
//	e, ok := cfg.Get("DEBUG")
//
// # Transforming
//
// Configs are immutable values. Every operation returns a new Config and
// leaves its inputs untouched, so sharing configs across goroutines is safe:
//
//	merged := kconfig.Merge(base, fragment)
//	d := kconfig.Diff(oldCfg, newCfg)
//	fmt.Println(kconfig.FormatDiff(d, oldCfg.Prefix()))
//
// Note that Merge replaces same-key entries in place (keeping the base
// position) while Config.Set moves the entry to the end. Both semantics are
// intentional and kept distinct.
//
// # Rendering
//
//	out := kconfig.Format(cfg, kconfig.DefaultFormatOptions())
//
// renders a byte-faithful round trip of what was parsed (modulo leading and
// trailing whitespace per line). FormatMinimal drops comments and blanks and
// sorts by key.
//
// # Building
//
// Builder constructs configs without text:
//
//	cfg, err := kconfig.NewBuilder().
//		WithPrefix("BR2_").
//		Bool("TARGET_GENERIC", true).
//		Hex("LOAD_ADDR", 0x80000).
//		Build()
//
// # Fragment stacks
//
// Stack layers a base config file with fragment overlays the way kernel
// merge_config.sh does, using Merge semantics per fragment:
//
//	st := kconfig.NewStack("defconfig", "fragments/debug.config")
//	if err := st.LoadAll(); err != nil { ... }
//	cfg := st.Merged()
package kconfig
