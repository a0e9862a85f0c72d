package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tactics-api/internal/entities"
	"github.com/KirkDiggler/tactics-api/internal/mapload"
	"github.com/KirkDiggler/tactics-api/internal/orchestrators/movement"
)

var (
	mapFile  string
	fromFlag string
	toFlag   string
	points   int
	pathFlag []string
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Find the cheapest path between two positions",
	RunE:  runPath,
}

var reachableCmd = &cobra.Command{
	Use:   "reachable",
	Short: "List the positions reachable within a movement point budget",
	RunE:  runReachable,
}

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Price a path given as a sequence of positions",
	RunE:  runCost,
}

func init() {
	for _, cmd := range []*cobra.Command{pathCmd, reachableCmd, costCmd} {
		cmd.Flags().StringVar(&mapFile, "map", "", "YAML map definition file")
		_ = cmd.MarkFlagRequired("map")
	}
	pathCmd.Flags().StringVar(&fromFlag, "from", "", "start position as x,y")
	pathCmd.Flags().StringVar(&toFlag, "to", "", "end position as x,y")
	_ = pathCmd.MarkFlagRequired("from")
	_ = pathCmd.MarkFlagRequired("to")

	reachableCmd.Flags().StringVar(&fromFlag, "from", "", "start position as x,y")
	reachableCmd.Flags().IntVar(&points, "points", 0, "movement point budget")
	_ = reachableCmd.MarkFlagRequired("from")
	_ = reachableCmd.MarkFlagRequired("points")

	costCmd.Flags().StringSliceVar(&pathFlag, "step", nil, "path position as x,y (repeat per step)")
	_ = costCmd.MarkFlagRequired("step")
}

func runPath(cmd *cobra.Command, args []string) error {
	m, svc, err := setup()
	if err != nil {
		return err
	}
	start, err := parsePosition(fromFlag)
	if err != nil {
		return err
	}
	end, err := parsePosition(toFlag)
	if err != nil {
		return err
	}

	output, err := svc.FindPath(context.Background(), &movement.FindPathInput{Map: m, Start: start, End: end})
	if err != nil {
		return err
	}
	if len(output.Path) == 0 {
		fmt.Println("no path")
		return nil
	}
	fmt.Printf("path (%d steps, cost %d): %s\n", len(output.Path)-1, output.Cost, formatPositions(output.Path))
	return nil
}

func runReachable(cmd *cobra.Command, args []string) error {
	m, svc, err := setup()
	if err != nil {
		return err
	}
	start, err := parsePosition(fromFlag)
	if err != nil {
		return err
	}

	output, err := svc.GetReachablePositions(context.Background(), &movement.GetReachablePositionsInput{
		Map:            m,
		Start:          start,
		MovementPoints: points,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%d positions reachable within %d points: %s\n",
		len(output.Positions), points, formatPositions(output.Positions))
	return nil
}

func runCost(cmd *cobra.Command, args []string) error {
	m, svc, err := setup()
	if err != nil {
		return err
	}
	path := make([]entities.Position, 0, len(pathFlag))
	for _, step := range pathFlag {
		pos, err := parsePosition(step)
		if err != nil {
			return err
		}
		path = append(path, pos)
	}

	output, err := svc.CalculatePathCost(context.Background(), &movement.CalculatePathCostInput{Map: m, Path: path})
	if err != nil {
		return err
	}
	fmt.Printf("cost: %d\n", output.Cost)
	return nil
}

func setup() (*entities.GameMap, movement.Service, error) {
	def, err := mapload.LoadFile(mapFile)
	if err != nil {
		return nil, nil, err
	}
	m, err := def.BuildMap()
	if err != nil {
		return nil, nil, err
	}
	svc, err := movement.NewOrchestrator(&movement.Config{})
	if err != nil {
		return nil, nil, err
	}
	return m, svc, nil
}

func parsePosition(s string) (entities.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return entities.Position{}, fmt.Errorf("invalid position %q, want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return entities.Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return entities.Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return entities.Position{X: x, Y: y}, nil
}

func formatPositions(positions []entities.Position) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
