package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/fittrack/fittrack/pkg/config"
	"github.com/fittrack/fittrack/pkg/stats"
	"github.com/fittrack/fittrack/pkg/store"
	gsync "github.com/fittrack/fittrack/pkg/sync"
	"github.com/fittrack/fittrack/pkg/tracker"
	"github.com/fittrack/fittrack/pkg/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir := getDataDir()
	cfg, err := config.Load(dataDir)
	if err != nil {
		return err
	}
	if cfg.DataDir != "" {
		dataDir = cfg.DataDir
	}

	s, err := store.NewStore(dataDir)
	if err != nil {
		return err
	}
	s.SetLogger(newLogger(dataDir, cfg.LogLevel))

	args := os.Args[1:]
	jsonOutput := hasFlag(args, "--json")
	args = removeFlag(args, "--json")

	if len(args) == 0 {
		return runTUI(s, cfg)
	}

	switch args[0] {
	case "log":
		return cmdLog(s, args[1:], jsonOutput)
	case "workouts", "list":
		return cmdWorkouts(s, args[1:], jsonOutput)
	case "stats":
		return cmdStats(s, jsonOutput)
	case "records":
		return cmdRecords(s, jsonOutput)
	case "goals":
		return cmdGoals(s, jsonOutput)
	case "goal":
		if len(args) < 2 {
			return fmt.Errorf("usage: fittrack goal <add|delete|seed> ...")
		}
		return cmdGoal(s, args[1], args[2:], jsonOutput)
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: fittrack delete <workout-id>")
		}
		return cmdDelete(s, args[1], jsonOutput)
	case "measure":
		return cmdMeasure(s, args[1:], jsonOutput)
	case "measurements":
		return cmdMeasurements(s, jsonOutput)
	case "session":
		return cmdSession(s, args[1:], jsonOutput)
	case "templates":
		return cmdTemplates(s, jsonOutput)
	case "export":
		return cmdExport(s, args[1:])
	case "import":
		if len(args) < 2 {
			return fmt.Errorf("usage: fittrack import <file>")
		}
		return cmdImport(s, args[1], jsonOutput)
	case "clear":
		return cmdClear(s, args[1:])
	case "init":
		remote := flagValue(args, "--remote")
		return gsync.InitRepo(dataDir, remote)
	case "sync":
		return gsync.SyncRepo(dataDir)
	default:
		return fmt.Errorf("unknown command: %s\nUsage: fittrack [log|workouts|stats|records|goals|goal|delete|measure|measurements|session|templates|export|import|clear|init|sync]", args[0])
	}
}

func getDataDir() string {
	if dir := os.Getenv("FITTRACK_DIR"); dir != "" {
		return dir
	}
	for i, a := range os.Args {
		if a == "--dir" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
	}
	return store.DefaultDataDir()
}

// newLogger writes to fittrack.log inside the data dir. Falls back to
// stderr when the file can't be opened.
func newLogger(dataDir, level string) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "fittrack.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		log.SetOutput(f)
	}
	return log
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func removeFlag(args []string, flag string) []string {
	var result []string
	for _, a := range args {
		if a != flag {
			result = append(result, a)
		}
	}
	return result
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func runTUI(s *store.Store, cfg *config.Config) error {
	m := tui.NewModel(s, cfg.BodyWeight)
	p := tea.NewProgram(m, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(s.Root, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	_, err = p.Run()
	return err
}

// CLI Commands

// cmdLog records a finished workout from the command line, e.g.:
//
//	fittrack log --name "Push Day" --duration 45 \
//	    "Bench Press/Chest:135x5,135x5,140x3" "Tricep Dips/Arms:0x12,0x10"
//
// Each positional argument is one exercise: name, optional /category, then
// comma-separated weightxreps sets. Totals are computed before saving, and
// strength goals are auto-tracked against the new workout.
func cmdLog(s *store.Store, args []string, jsonOut bool) error {
	now := time.Now()
	w := store.Workout{
		ID:   store.NewID(),
		Date: now,
		Name: "Workout",
	}

	var specs []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--name":
			if i+1 >= len(args) {
				return fmt.Errorf("--name requires a value")
			}
			i++
			w.Name = args[i]
		case "--duration":
			if i+1 >= len(args) {
				return fmt.Errorf("--duration requires a value")
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil || d < 0 {
				return fmt.Errorf("invalid duration: %s", args[i])
			}
			w.Duration = d
		case "--date":
			if i+1 >= len(args) {
				return fmt.Errorf("--date requires a value")
			}
			i++
			t, err := parseDate(args[i])
			if err != nil {
				return err
			}
			w.Date = t
		case "--dir":
			i++ // consumed globally
		default:
			specs = append(specs, args[i])
		}
	}

	if len(specs) == 0 {
		return fmt.Errorf("usage: fittrack log [--name N] [--duration MIN] [--date YYYY-MM-DD] \"Exercise[/Category]:WxR,WxR,...\"")
	}
	for _, spec := range specs {
		ex, err := parseExerciseSpec(spec)
		if err != nil {
			return err
		}
		w.Exercises = append(w.Exercises, ex)
	}

	w.ComputeTotals()
	if w.TotalSets == 0 {
		return fmt.Errorf("a workout needs at least one completed set")
	}

	s.SaveWorkout(w)
	tracker.Apply(s, w, now)

	if jsonOut {
		return outputJSON(w)
	}
	fmt.Printf("Logged: %s — %d sets, %d reps, %d lbs\n", w.Name, w.TotalSets, w.TotalReps, w.TotalWeight)
	return nil
}

func cmdWorkouts(s *store.Store, args []string, jsonOut bool) error {
	limit := 0
	if v := flagValue(args, "--limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid limit: %s", v)
		}
		limit = n
	}
	workouts := s.RecentWorkouts(limit)

	if jsonOut {
		return outputJSON(workouts)
	}
	if len(workouts) == 0 {
		fmt.Println("No workouts logged yet.")
		return nil
	}
	for _, w := range workouts {
		fmt.Printf("%s  %s  %-24s %3d min  %d sets  %d lbs\n",
			w.ID[:8], w.Date.Local().Format("2006-01-02"), w.Name, w.Duration, w.TotalSets, w.TotalWeight)
	}
	return nil
}

func cmdStats(s *store.Store, jsonOut bool) error {
	st := stats.Calculate(s.Workouts(), time.Now())

	if jsonOut {
		return outputJSON(st)
	}
	fmt.Printf("Workouts:       %d total, %d this week (goal %d)\n", st.TotalWorkouts, st.WeeklyWorkouts, st.WeeklyGoal)
	fmt.Printf("Current streak: %d days\n", st.CurrentStreak)
	fmt.Printf("Volume:         %d sets, %d reps, %d lbs\n", st.TotalSets, st.TotalReps, st.TotalWeight)
	fmt.Printf("Time:           %d hours trained, %d min average\n", st.TotalHours, st.AvgDuration)
	return nil
}

func cmdRecords(s *store.Store, jsonOut bool) error {
	records := stats.RecordsWithImprovement(s.Workouts())

	if jsonOut {
		return outputJSON(records)
	}
	if len(records) == 0 {
		fmt.Println("No personal records yet.")
		return nil
	}
	for _, r := range records {
		line := fmt.Sprintf("%-28s %g lbs × %d  (%s)", r.Exercise, r.Weight, r.Reps, r.Date.Local().Format("2006-01-02"))
		if r.Improvement > 0 {
			line += fmt.Sprintf("  +%g lbs", r.Improvement)
		}
		fmt.Println(line)
	}
	return nil
}

func cmdGoals(s *store.Store, jsonOut bool) error {
	st := stats.Calculate(s.Workouts(), time.Now())
	goals := tracker.Refresh(s.Goals(), st)

	if jsonOut {
		return outputJSON(goals)
	}
	if len(goals) == 0 {
		fmt.Println("No goals yet. Try: fittrack goal seed")
		return nil
	}
	for _, g := range goals {
		mark := "○"
		if g.Completed {
			mark = "✓"
		}
		fmt.Printf("%s %s  %s — %g / %g %s\n", g.ID[:8], mark, g.Title, g.Current, g.Target, g.Unit)
	}
	return nil
}

func cmdGoal(s *store.Store, sub string, args []string, jsonOut bool) error {
	switch sub {
	case "add":
		return cmdGoalAdd(s, args, jsonOut)
	case "delete":
		if len(args) < 1 {
			return fmt.Errorf("usage: fittrack goal delete <goal-id>")
		}
		s.DeleteGoal(args[0])
		if jsonOut {
			return outputJSON(map[string]string{"deleted": args[0]})
		}
		fmt.Printf("Deleted goal: %s\n", args[0])
		return nil
	case "seed":
		if len(s.Goals()) > 0 {
			return fmt.Errorf("goals already exist; seed only populates an empty goal list")
		}
		st := stats.Calculate(s.Workouts(), time.Now())
		defaults := tracker.DefaultGoals(st, time.Now())
		s.SaveGoals(defaults)
		if jsonOut {
			return outputJSON(defaults)
		}
		fmt.Printf("Added %d starter goals.\n", len(defaults))
		return nil
	default:
		return fmt.Errorf("unknown goal command: %s", sub)
	}
}

func cmdGoalAdd(s *store.Store, args []string, jsonOut bool) error {
	g := store.Goal{
		ID:          store.NewID(),
		Type:        store.GoalStrength,
		Metric:      store.MetricWeight,
		Unit:        "lbs",
		CreatedDate: time.Now(),
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--title":
			i++
			g.Title = argAt(args, i)
		case "--type":
			i++
			g.Type = store.GoalType(argAt(args, i))
		case "--exercise":
			i++
			g.ExerciseName = argAt(args, i)
		case "--metric":
			i++
			g.Metric = store.GoalMetric(argAt(args, i))
		case "--unit":
			i++
			g.Unit = argAt(args, i)
		case "--frequency":
			i++
			g.Frequency = store.GoalFrequency(argAt(args, i))
		case "--target":
			i++
			v, err := strconv.ParseFloat(argAt(args, i), 64)
			if err != nil {
				return fmt.Errorf("invalid target: %s", argAt(args, i))
			}
			g.Target = v
		}
	}
	if g.Title == "" || g.Target <= 0 {
		return fmt.Errorf("usage: fittrack goal add --title T --target N [--type strength] [--exercise E] [--metric weight|reps] [--unit U]")
	}
	if g.Type == store.GoalStrength && g.ExerciseName == "" {
		return fmt.Errorf("strength goals need --exercise")
	}
	s.SaveGoal(g)
	if jsonOut {
		return outputJSON(g)
	}
	fmt.Printf("Created goal: %s\n", g.Title)
	return nil
}

func cmdDelete(s *store.Store, id string, jsonOut bool) error {
	s.DeleteWorkout(id)
	if jsonOut {
		return outputJSON(map[string]string{"deleted": id})
	}
	fmt.Printf("Deleted: %s\n", id)
	return nil
}

func cmdMeasure(s *store.Store, args []string, jsonOut bool) error {
	m := store.Measurement{Date: time.Now().Local().Format("2006-01-02")}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--weight":
			i++
			v, err := strconv.ParseFloat(argAt(args, i), 64)
			if err != nil {
				return fmt.Errorf("invalid weight: %s", argAt(args, i))
			}
			m.Weight = &v
		case "--bodyfat":
			i++
			v, err := strconv.ParseFloat(argAt(args, i), 64)
			if err != nil {
				return fmt.Errorf("invalid bodyfat: %s", argAt(args, i))
			}
			m.BodyFat = &v
		case "--date":
			i++
			m.Date = argAt(args, i)
		}
	}
	if m.Weight == nil && m.BodyFat == nil {
		return fmt.Errorf("usage: fittrack measure --weight LBS [--bodyfat PCT] [--date YYYY-MM-DD]")
	}
	s.SaveMeasurement(m)
	if jsonOut {
		return outputJSON(m)
	}
	fmt.Println("Measurement saved.")
	return nil
}

func cmdMeasurements(s *store.Store, jsonOut bool) error {
	measurements := s.Measurements()
	if jsonOut {
		return outputJSON(measurements)
	}
	if len(measurements) == 0 {
		fmt.Println("No measurements yet.")
		return nil
	}
	for _, m := range measurements {
		line := m.Month
		if m.Weight != nil {
			line += fmt.Sprintf("  %g lbs", *m.Weight)
		}
		if m.BodyFat != nil {
			line += fmt.Sprintf("  %g%% bf", *m.BodyFat)
		}
		fmt.Println(line)
	}
	return nil
}

func cmdSession(s *store.Store, args []string, jsonOut bool) error {
	if len(args) > 0 && args[0] == "clear" {
		ok := s.ClearSession()
		if jsonOut {
			return outputJSON(map[string]bool{"cleared": ok})
		}
		fmt.Println("Session cleared.")
		return nil
	}

	s.CleanupStaleSession(time.Now())
	sess := s.Session()
	if sess == nil {
		if jsonOut {
			return outputJSON(nil)
		}
		fmt.Println("No workout in progress.")
		return nil
	}
	sum := sess.Summary()
	if jsonOut {
		return outputJSON(sum)
	}
	fmt.Printf("%s — %d exercises, %d/%d sets done (%d%%)\n",
		sum.WorkoutName, sum.ExerciseCount, sum.CompletedSets, sum.TotalSets, sum.ProgressPercentage)
	return nil
}

func cmdTemplates(s *store.Store, jsonOut bool) error {
	templates := s.Templates()
	if jsonOut {
		return outputJSON(templates)
	}
	for _, t := range templates {
		fmt.Printf("%-24s %s  %s  (%d exercises)\n", t.ID, t.Name, t.Duration, len(t.Exercises))
	}
	return nil
}

func cmdExport(s *store.Store, args []string) error {
	data, err := s.Export(time.Now())
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if err := os.WriteFile(args[0], []byte(data), 0644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Printf("Exported to %s\n", args[0])
		return nil
	}
	fmt.Println(data)
	return nil
}

func cmdImport(s *store.Store, path string, jsonOut bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	ok := s.Import(string(data))
	if jsonOut {
		return outputJSON(map[string]bool{"imported": ok})
	}
	if !ok {
		return fmt.Errorf("import failed: payload is not a fittrack export")
	}
	fmt.Println("Import complete.")
	return nil
}

func cmdClear(s *store.Store, args []string) error {
	if !hasFlag(args, "--force") {
		return fmt.Errorf("this deletes all data; rerun with --force to confirm")
	}
	s.ClearAll()
	fmt.Println("All data cleared.")
	return nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", v)
	}
	return t, nil
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
