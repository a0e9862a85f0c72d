package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tactics-api/internal/mapload"
	"github.com/KirkDiggler/tactics-api/internal/pkg/clock"
	"github.com/KirkDiggler/tactics-api/internal/pkg/idgen"
	"github.com/KirkDiggler/tactics-api/internal/redis"
	"github.com/KirkDiggler/tactics-api/internal/repositories/maps"
)

var (
	redisAddr  string
	snapshotID string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store a map definition as a snapshot in Redis",
	RunE:  runSave,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored map snapshots",
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored map snapshot",
	RunE:  runDelete,
}

func init() {
	for _, cmd := range []*cobra.Command{saveCmd, listCmd, deleteCmd} {
		cmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis address")
	}
	saveCmd.Flags().StringVar(&mapFile, "map", "", "YAML map definition file")
	_ = saveCmd.MarkFlagRequired("map")

	deleteCmd.Flags().StringVar(&snapshotID, "id", "", "snapshot ID")
	_ = deleteCmd.MarkFlagRequired("id")
}

func runSave(cmd *cobra.Command, args []string) error {
	repo, err := setupRepository()
	if err != nil {
		return err
	}
	def, err := mapload.LoadFile(mapFile)
	if err != nil {
		return err
	}
	m, err := def.BuildMap()
	if err != nil {
		return err
	}
	snapshot, err := maps.NewSnapshot(m)
	if err != nil {
		return err
	}
	snapshot.Name = def.Name

	output, err := repo.Save(context.Background(), &maps.SaveInput{Snapshot: snapshot})
	if err != nil {
		return err
	}
	fmt.Printf("saved %s (%s, %dx%d, %d objects)\n",
		output.Snapshot.ID, output.Snapshot.Name,
		output.Snapshot.Width, output.Snapshot.Height, len(output.Snapshot.Objects))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	repo, err := setupRepository()
	if err != nil {
		return err
	}
	output, err := repo.List(context.Background(), &maps.ListInput{})
	if err != nil {
		return err
	}
	for _, id := range output.SnapshotIDs {
		fmt.Println(id)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	repo, err := setupRepository()
	if err != nil {
		return err
	}
	if _, err := repo.Delete(context.Background(), &maps.DeleteInput{SnapshotID: snapshotID}); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", snapshotID)
	return nil
}

func setupRepository() (maps.Repository, error) {
	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return nil, err
	}
	return maps.NewRedisRepository(&maps.Config{
		Client:      client,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("map"),
	})
}
