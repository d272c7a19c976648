package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmtoolbox/inserts-api/internal/normalize"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for legacy or corrupted card data...")

	iter := client.Scan(ctx, 0, "insert:*", 0).Iterator()

	var legacyKeys []string
	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if key == "insert:order" {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(data), &raw); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if hasLegacyFields(raw) {
			fmt.Printf("✗ Legacy format detected in %s\n", key)
			legacyKeys = append(legacyKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys: %d legacy, %d corrupted\n",
		checkedCount, len(legacyKeys), len(corruptedKeys))

	if len(legacyKeys) == 0 && len(corruptedKeys) == 0 {
		fmt.Println("Nothing to migrate!")
		return
	}

	fmt.Print("\nRewrite legacy entries and DELETE corrupted ones? (yes/no): ")
	var response string
	fmt.Scanln(&response)
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	normalizer := normalize.New(nil)

	for _, key := range legacyKeys {
		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Failed to re-read %s: %v\n", key, err)
			continue
		}

		card, err := normalizer.NormalizeJSON([]byte(data))
		if err != nil {
			fmt.Printf("Failed to normalize %s: %v\n", key, err)
			continue
		}

		out, err := json.Marshal(card)
		if err != nil {
			fmt.Printf("Failed to marshal %s: %v\n", key, err)
			continue
		}

		if err := client.Set(ctx, key, out, 0).Err(); err != nil {
			fmt.Printf("Failed to write %s: %v\n", key, err)
		} else {
			fmt.Printf("Rewrote %s\n", key)
		}
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}

	fmt.Println("\nMigration complete!")
}

// hasLegacyFields reports whether the raw card still carries pre-skills-map
// fields: flat prof<Skill>/mod<Skill> pairs, or a positive darkvision
// number with no matching senses entry.
func hasLegacyFields(raw map[string]any) bool {
	if dv, ok := raw["darkvision"].(float64); ok && dv > 0 {
		senses, _ := raw["senses"].(map[string]any)
		if _, ok := senses["darkvision"]; !ok {
			return true
		}
	}
	for field := range raw {
		if isLegacySkillField(field, "prof") || isLegacySkillField(field, "mod") {
			return true
		}
	}
	return false
}

// isLegacySkillField matches prefix followed by an upper-case letter, e.g.
// "profPerception" or "modStealth", without catching fields like
// "proficiencyBonus".
func isLegacySkillField(field, prefix string) bool {
	if !strings.HasPrefix(field, prefix) || len(field) == len(prefix) {
		return false
	}
	c := field[len(prefix)]
	return c >= 'A' && c <= 'Z'
}
