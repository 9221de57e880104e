package systems

import (
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata"
)

const highScoreItem = "highscore"

// itemStore is the slice of gdata.Manager the score tracker needs; tests
// substitute an in-memory store.
type itemStore interface {
	SaveItem(itemName string, data []byte) error
	LoadItem(itemName string) ([]byte, error)
}

var (
	scoreStore       itemStore
	storeInitialized bool
	bestScore        int
)

// InitPersistence opens the gdata manager used for high-score storage.
// Failure is non-fatal: the game runs with an in-memory best of 0.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skydrift",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	scoreStore = m
	storeInitialized = true
	return nil
}

// LoadBestScore reads the persisted best score. A missing, unreadable or
// unparsable item yields 0.
func LoadBestScore() int {
	if !storeInitialized || scoreStore == nil {
		return bestScore
	}
	data, err := scoreStore.LoadItem(highScoreItem)
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return bestScore
	}
	bestScore = decodeBestScore(data)
	return bestScore
}

// decodeBestScore parses the stored plain-text integer. Anything that is
// not a non-negative integer counts as a missing file.
func decodeBestScore(data []byte) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// syncBestScore keeps the process-wide best current as rounds are
// played, so the shutdown save does not depend on ECS state.
func syncBestScore(n int) {
	if n > bestScore {
		bestScore = n
	}
}

// SaveBestScore writes the best score back to storage. Errors are logged
// and dropped; a failed save must never block shutdown.
func SaveBestScore() {
	if !storeInitialized || scoreStore == nil {
		return
	}
	if err := scoreStore.SaveItem(highScoreItem, []byte(strconv.Itoa(bestScore))); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
	}
}
