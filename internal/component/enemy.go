package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string // ID из конфигурации
	Reward     int
	Tier       string
	LeakDamage int  // сколько жизней снимает при достижении конца пути
	ReachedEnd bool // Достиг ли враг конца пути
}
