// internal/event/types.go
package event

const (
	MoneyChanged     EventType = "MoneyChanged"     // Data: int, новый баланс
	TowerPlaced      EventType = "TowerPlaced"      // Data: types.EntityID
	TowerUpgraded    EventType = "TowerUpgraded"    // Data: types.EntityID
	TowerSold        EventType = "TowerSold"        // Data: types.EntityID
	EnemySpawned     EventType = "EnemySpawned"     // Data: types.EntityID
	EnemyKilled      EventType = "EnemyKilled"      // Data: types.EntityID
	EnemyLeaked      EventType = "EnemyLeaked"      // Data: types.EntityID
	InfectionStarted EventType = "InfectionStarted" // Data: types.EntityID
	InfectionCured   EventType = "InfectionCured"   // Data: types.EntityID
	WaveStarted      EventType = "WaveStarted"      // Data: int, индекс волны
	WaveCompleted    EventType = "WaveCompleted"    // Data: int, индекс волны
	GameOver         EventType = "GameOver"
	Victory          EventType = "Victory"
)
