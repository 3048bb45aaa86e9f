package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/riskibarqy/draft-assistant/internal/app"
	"github.com/riskibarqy/draft-assistant/internal/config"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/platform/logging"
	"github.com/riskibarqy/draft-assistant/internal/usecase"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = application.Close()
	}()

	if err := run(ctx, application, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) || errors.Is(err, usecase.ErrNotFound) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, application *app.Application, command string, args []string) error {
	switch command {
	case "create":
		return createSession(ctx, application, args)
	case "delete":
		return deleteSession(ctx, application, args)
	case "sessions":
		return listSessions(ctx, application)
	case "board":
		return showBoard(ctx, application, args)
	case "recommend":
		return recommend(ctx, application, args)
	case "ranks":
		return updateRanks(ctx, application, args)
	case "pick":
		return recordPick(ctx, application, args)
	case "undo":
		return undoPick(ctx, application, args)
	case "export":
		return exportSession(ctx, application, args)
	default:
		printUsage()
		return fmt.Errorf("%w: unknown command %q", usecase.ErrInvalidInput, command)
	}
}

func createSession(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	name := fs.String("name", "", "league name")
	teams := fs.Int("teams", 12, "number of teams")
	rounds := fs.Int("rounds", 15, "number of rounds")
	draftType := fs.String("type", "snake", "draft type (snake or straight)")
	teamNames := fs.String("team-names", "", "comma-separated team names, one per slot")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	cfg, err := application.Drafts.CreateConfig(ctx, usecase.CreateConfigInput{
		Name:      *name,
		NumTeams:  *teams,
		NumRounds: *rounds,
		DraftType: *draftType,
	})
	if err != nil {
		return err
	}

	input := usecase.CreateSessionInput{ConfigID: cfg.ID, Name: *name}
	if *teamNames != "" {
		input.TeamNames = strings.Split(*teamNames, ",")
	}
	session, err := application.Drafts.CreateSession(ctx, input)
	if err != nil {
		return err
	}

	fmt.Printf("session %d created: %s, %d teams x %d rounds, %s\n",
		session.ID, cfg.Name, cfg.NumTeams, cfg.NumRounds, cfg.Type)
	return nil
}

func deleteSession(ctx context.Context, application *app.Application, args []string) error {
	sessionID, err := parseSessionID(args)
	if err != nil {
		return err
	}

	if err := application.Drafts.DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	fmt.Printf("session %d deleted\n", sessionID)
	return nil
}

func listSessions(ctx context.Context, application *app.Application) error {
	sessions, err := application.Drafts.ListSessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("no draft sessions")
		return nil
	}

	for _, s := range sessions {
		fmt.Printf("%d\t%s\t%s\t%d teams x %d rounds\t%d/%d picks\t%s\n",
			s.ID, s.ConfigName, s.Type, s.NumTeams, s.NumRounds,
			s.PicksMade, s.NumTeams*s.NumRounds, s.Status)
	}
	return nil
}

func showBoard(ctx context.Context, application *app.Application, args []string) error {
	sessionID, err := parseSessionID(args)
	if err != nil {
		return err
	}

	info, err := application.Drafts.CurrentPickInfo(ctx, sessionID)
	if err != nil {
		return err
	}
	if info == nil {
		fmt.Println("draft complete")
	} else {
		fmt.Printf("on the clock: pick %d/%d (round %d) %s\n",
			info.PickNumber, info.TotalPicks, info.RoundNumber, info.TeamName)
	}

	picks, err := application.Drafts.ListPicks(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, p := range picks {
		fmt.Printf("%3d  R%-2d T%-2d  %-4s %s\n",
			p.PickNumber, p.RoundNumber, p.TeamNumber, p.Position, p.PlayerName)
	}
	return nil
}

func recommend(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	sessionID := fs.Int64("session", 0, "draft session id")
	limit := fs.Int("limit", 10, "max players to show")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	if *sessionID <= 0 {
		return fmt.Errorf("%w: -session is required", usecase.ErrInvalidInput)
	}

	if _, err := application.Replacements.Recompute(ctx, *sessionID); err != nil {
		return err
	}
	scored, err := application.Valuations.Recommendations(ctx, *sessionID)
	if err != nil {
		return err
	}

	for i, p := range scored {
		if i >= *limit {
			break
		}
		adp := "-"
		if p.ADP != nil {
			adp = strconv.FormatFloat(*p.ADP, 'f', 1, 64)
		}
		fmt.Printf("%-4s %-28s adp=%-6s value=%7.1f vona=%7.1f\n",
			p.Position, p.Name, adp, p.ValueScore, p.VonaScore)
	}
	return nil
}

func updateRanks(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("ranks", flag.ContinueOnError)
	sessionID := fs.Int64("session", 0, "draft session id")
	set := fs.String("set", "", `rank overrides, e.g. "QB:22,RB:36"`)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	if *sessionID <= 0 {
		return fmt.Errorf("%w: -session is required", usecase.ErrInvalidInput)
	}

	if *set != "" {
		ranks, err := config.ParseRankMap(*set)
		if err != nil {
			return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		if err := application.Replacements.UpdateRanks(ctx, *sessionID, ranks); err != nil {
			return err
		}
		if _, err := application.Replacements.Recompute(ctx, *sessionID); err != nil {
			return err
		}
	}

	levels, err := application.Replacements.Levels(ctx, *sessionID)
	if err != nil {
		return err
	}
	for _, position := range player.PositionOrder {
		level, ok := levels[position]
		if !ok {
			continue
		}
		fmt.Printf("%-4s rank=%-3d baseline=%7.1f\n", position, level.Rank, level.Value)
	}
	return nil
}

func recordPick(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	sessionID := fs.Int64("session", 0, "draft session id")
	name := fs.String("player", "", "player name")
	position := fs.String("position", "", "player position (QB, RB, WR, TE, K, DST)")
	team := fs.String("team", "", "NFL team abbreviation")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	if *sessionID <= 0 {
		return fmt.Errorf("%w: -session is required", usecase.ErrInvalidInput)
	}

	pick, err := application.Valuations.RecordScoredPick(ctx, *sessionID, *name, player.Position(*position), *team)
	if err != nil {
		return err
	}

	fmt.Printf("pick %d (round %d, team %d): %s value=%.1f vona=%.1f\n",
		pick.PickNumber, pick.RoundNumber, pick.TeamNumber, pick.PlayerName, pick.ValueScore, pick.VonaScore)
	return nil
}

func undoPick(ctx context.Context, application *app.Application, args []string) error {
	sessionID, err := parseSessionID(args)
	if err != nil {
		return err
	}

	pick, err := application.Drafts.UndoLastPick(ctx, sessionID)
	if err != nil {
		return err
	}

	fmt.Printf("undid pick %d: %s\n", pick.PickNumber, pick.PlayerName)
	return nil
}

func exportSession(ctx context.Context, application *app.Application, args []string) error {
	sessionID, err := parseSessionID(args)
	if err != nil {
		return err
	}

	payload, err := application.Drafts.ExportSession(ctx, sessionID)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(append(payload, '\n'))
	return err
}

func parseSessionID(args []string) (int64, error) {
	fs := flag.NewFlagSet("session", flag.ContinueOnError)
	sessionID := fs.Int64("session", 0, "draft session id")
	if err := fs.Parse(args); err != nil {
		return 0, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	if *sessionID <= 0 {
		return 0, fmt.Errorf("%w: -session is required", usecase.ErrInvalidInput)
	}
	return *sessionID, nil
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <create|sessions|board|recommend|ranks|pick|undo|export|delete> [flags]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s create -name \"Home League\" -teams 12 -rounds 15 -type snake\n", name)
	fmt.Fprintf(os.Stderr, "  %s sessions\n", name)
	fmt.Fprintf(os.Stderr, "  %s board -session 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s recommend -session 1 -limit 15\n", name)
	fmt.Fprintf(os.Stderr, "  %s ranks -session 1 -set \"QB:22,RB:36\"\n", name)
	fmt.Fprintf(os.Stderr, "  %s pick -session 1 -player \"Josh Allen\" -position QB -team BUF\n", name)
	fmt.Fprintf(os.Stderr, "  %s undo -session 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s export -session 1 > board.json\n", name)
	fmt.Fprintf(os.Stderr, "  %s delete -session 1\n", name)
}
