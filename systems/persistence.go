package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const permanentItem = "permanent"

// ItemStore is the subset of *gdata.Manager used for saves.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenStore opens the on-disk save location for appName. A failure is logged
// and yields a nil store, which disables persistence.
func OpenStore(appName string) ItemStore {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil
	}
	return m
}

// LoadPermanentState reads the saved permanent state. Missing or unreadable
// saves yield an empty map.
func LoadPermanentState(store ItemStore) map[string]int {
	values := map[string]int{}
	if store == nil {
		return values
	}

	data, err := store.LoadItem(permanentItem)
	if err != nil {
		log.Printf("Warning: Could not load permanent state: %v", err)
		return values
	}
	if data == nil {
		return values
	}

	if err := json.Unmarshal(data, &values); err != nil {
		log.Printf("Warning: Could not parse permanent state: %v", err)
		return map[string]int{}
	}
	return values
}

// SavePermanentState writes values to store.
func SavePermanentState(store ItemStore, values map[string]int) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("serializing permanent state: %w", err)
	}

	if err := store.SaveItem(permanentItem, data); err != nil {
		return fmt.Errorf("saving permanent state: %w", err)
	}
	return nil
}
