package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	redisclient "github.com/KirkDiggler/ordem-api/internal/redis"

	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
)

const (
	characterPrefix = "character:"
	playerPrefix    = "character:player:"
)

// Scans stored characters for rows that no longer decode or whose resources
// sit outside their maxima, and offers to repair them.
func main() {
	addr := os.Getenv("ORDEM_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := redisclient.Connect(ctx, addr, nil)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer client.Close()

	fmt.Println("Connected to Redis:", addr)
	fmt.Println("Scanning character rows...")

	iter := client.Scan(ctx, 0, characterPrefix+"*", 0).Iterator()

	var (
		corrupted []string
		repairs   = map[string]*ordem.Character{}
		checked   int
	)

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, playerPrefix) {
			continue
		}
		checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var c ordem.Character
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corrupted = append(corrupted, key)
			continue
		}

		if problems := inspect(&c); len(problems) > 0 {
			fmt.Printf("✗ %s (%s):\n", key, c.Name)
			for _, p := range problems {
				fmt.Printf("    %s\n", p)
			}
			repairs[key] = &c
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d characters: %d corrupted, %d out of bounds\n", checked, len(corrupted), len(repairs))
	if len(corrupted) == 0 && len(repairs) == 0 {
		fmt.Println("No problems found!")
		return
	}

	fmt.Print("\nClamp out of bounds resources and DELETE corrupted rows? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for key, c := range repairs {
		data, err := json.Marshal(c)
		if err != nil {
			fmt.Printf("Failed to encode %s: %v\n", key, err)
			continue
		}
		if err := client.Set(ctx, key, data, 0).Err(); err != nil {
			fmt.Printf("Failed to repair %s: %v\n", key, err)
		} else {
			fmt.Printf("Repaired %s\n", key)
		}
	}

	for _, key := range corrupted {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// inspect recomputes the maxima and clamps current values in place,
// returning a line per fix
func inspect(c *ordem.Character) []string {
	var problems []string

	maxima, err := resources.MaximaFor(c.Class, c.Attributes, c.NEX, c.MaxSANLoss)
	if err != nil {
		return []string{fmt.Sprintf("cannot compute maxima: %v", err)}
	}

	fix := func(name string, current, stored *int, want int) {
		if *stored != want {
			problems = append(problems, fmt.Sprintf("max %s %d, expected %d", name, *stored, want))
			*stored = want
		}
		if clamped := resources.Clamp(*current, want); clamped != *current {
			problems = append(problems, fmt.Sprintf("%s %d outside 0..%d", name, *current, want))
			*current = clamped
		}
	}

	fix("PV", &c.PV, &c.MaxPV, maxima.PV)
	fix("SAN", &c.SAN, &c.MaxSAN, maxima.SAN)
	fix("PE", &c.PE, &c.MaxPE, maxima.PE)

	return problems
}
