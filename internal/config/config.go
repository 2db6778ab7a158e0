// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	// Шаг симуляции
	MaxDeltaTime       = 0.1      // верхняя граница dt за один тик
	NominalDeltaTime   = 1.0 / 60 // подставляется вместо некорректного dt
	SpeedScale         = 60.0     // пикселей в секунду на единицу скорости врага
	MaxSpeedMultiplier = 4

	// Снаряды
	ProjectileSpeed       = 420.0 // pixels per second
	HeavyProjectileSpeed  = 260.0
	AreaProjectileSpeed   = 300.0
	ProjectileHitEpsilon  = 4.0
	ProjectileMaxLifetime = 3.0 // seconds
	ProjectileRadius      = 4.0
	DefaultBlastRadius    = 60.0
	BlastEffectDuration   = 0.3
	DamageFlashDuration   = 0.12

	// Размещение башен
	PathClearance   = 28.0
	MinTowerSpacing = 30.0
	TowerRadius     = 14.0

	// Экономика
	DefaultRefundRate = 0.7
	DefaultLeakDamage = 1

	// Враги
	EnemyRadius               = 10.0
	BossTier                  = "boss"
	BossSlowImmunityThreshold = 0.5 // замедления слабее этого значения боссы игнорируют

	// HUD
	HUDLineHeight = 16
	HUDMarginX    = 10
	HUDMarginY    = 20

	// Кнопки
	ButtonSize        = 14
	PauseButtonX      = ScreenWidth - 40
	SpeedButtonX      = ScreenWidth - 100
	ButtonY           = 40
	ButtonBorderWidth = 2
	ClickCooldown     = 200 // ms
	InfoPanelHeight   = 130
	MessageLifetime   = 2.5 // seconds
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	InfectedColor    = color.RGBA{120, 220, 60, 255}
	RangeColor       = color.RGBA{255, 255, 0, 64}
	HealthBarBack    = color.RGBA{60, 0, 0, 255}
	HealthBarFront   = color.RGBA{50, 205, 50, 255}
	PausedOverlay    = color.RGBA{0, 0, 0, 128}

	TowerColors = map[string]color.RGBA{
		"economic":         {255, 215, 0, 255},
		"offensive-single": {255, 50, 50, 255},
		"offensive-heavy":  {180, 50, 230, 255},
		"offensive-area":   {255, 140, 0, 255},
		"support":          {50, 100, 255, 255},
		"support-sensor":   {0, 200, 200, 255},
	}
	ProjectileColors = map[string]color.RGBA{
		"offensive-single": {255, 255, 0, 255},
		"offensive-heavy":  {240, 240, 240, 255},
		"offensive-area":   {255, 100, 0, 255},
	}
	DefaultEnemyColor = color.RGBA{200, 40, 40, 255}
	UIBorderColor     = color.RGBA{255, 255, 255, 255}
	PauseButtonColor  = color.RGBA{70, 130, 180, 255}
	PlayButtonColor   = color.RGBA{60, 179, 113, 255}

	// Множители скорости и цвета кнопки для каждого из них
	SpeedMultipliers  = []int{1, 2, MaxSpeedMultiplier}
	SpeedButtonColors = []color.RGBA{
		{60, 179, 113, 255},
		{255, 215, 0, 255},
		{255, 69, 0, 255},
	}
)
