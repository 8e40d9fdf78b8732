package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fittrack/fittrack/pkg/store"
)

// parseExerciseSpec turns a compact CLI spec into an Exercise:
//
//	"Bench Press/Chest:135x5,135x5,140x3"
//	"Pull-ups:0x8,0x6"
//
// Format: Name[/Category]:WEIGHTxREPS[,WEIGHTxREPS...]. Weight may be a
// decimal; 0 means bodyweight. All sets logged this way are completed.
func parseExerciseSpec(spec string) (store.Exercise, error) {
	var ex store.Exercise

	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return ex, fmt.Errorf("invalid exercise spec %q (want \"Name[/Category]:WxR,WxR\")", spec)
	}
	name, setsPart := spec[:idx], spec[idx+1:]

	if slash := strings.LastIndex(name, "/"); slash > 0 {
		ex.Category = name[slash+1:]
		name = name[:slash]
	}
	ex.ID = store.NewID()
	ex.Name = strings.TrimSpace(name)
	if ex.Name == "" {
		return ex, fmt.Errorf("invalid exercise spec %q: empty name", spec)
	}

	for _, setSpec := range strings.Split(setsPart, ",") {
		set, err := parseSetSpec(strings.TrimSpace(setSpec))
		if err != nil {
			return ex, fmt.Errorf("in %q: %w", spec, err)
		}
		ex.Sets = append(ex.Sets, set)
	}
	return ex, nil
}

// parseSetSpec parses one "WEIGHTxREPS" token.
func parseSetSpec(spec string) (store.Set, error) {
	parts := strings.SplitN(strings.ToLower(spec), "x", 2)
	if len(parts) != 2 {
		return store.Set{}, fmt.Errorf("invalid set %q (want WEIGHTxREPS)", spec)
	}
	weight, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || weight < 0 {
		return store.Set{}, fmt.Errorf("invalid weight in set %q", spec)
	}
	reps, err := strconv.Atoi(parts[1])
	if err != nil || reps < 0 {
		return store.Set{}, fmt.Errorf("invalid reps in set %q", spec)
	}
	return store.Set{Weight: weight, Reps: reps, Completed: true}, nil
}
