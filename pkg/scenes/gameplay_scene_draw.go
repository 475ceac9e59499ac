package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/enemy"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/weapon"
)

// 绘制颜色
var (
	backgroundColor   = color.RGBA{R: 10, G: 12, B: 30, A: 255}
	playerColor       = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	enemyColor        = color.RGBA{R: 230, G: 90, B: 70, A: 255}
	playerBulletColor = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	enemyBulletColor  = color.RGBA{R: 255, G: 120, B: 200, A: 255}
	debugColor        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	gameOverColor     = color.RGBA{R: 255, G: 0, B: 68, A: 255}
)

// Draw 实现 game.Scene 接口
// 没有贴图资源，所有对象都画成色块
func (s *GameplayScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.enemies.Each(func(e *enemy.Enemy) {
		if e.IsAlive() {
			fillActor(screen, &e.Actor, enemyColor)
		}
	})
	if s.player.IsAlive() {
		fillCentered(screen, s.player.X, s.player.Y, entities.PlayerSpriteSize, entities.PlayerSpriteSize, playerColor)
	}
	s.playerBullets.Each(func(_ ecs.Handle, b *weapon.Bullet) { fillActor(screen, &b.Actor, playerBulletColor) })
	s.enemyBullets.Each(func(_ ecs.Handle, b *weapon.Bullet) { fillActor(screen, &b.Actor, enemyBulletColor) })
	s.particles.Each(func(p *components.ParticleComponent) {
		c := color.RGBA{R: 255, G: 180, B: 60, A: 255}
		c.A = uint8(255 * p.Alpha)
		c.R = uint8(float64(c.R) * p.Alpha)
		c.G = uint8(float64(c.G) * p.Alpha)
		c.B = uint8(float64(c.B) * p.Alpha)
		fillCentered(screen, p.X, p.Y, p.Size, p.Size, c)
	})

	if s.showDebug {
		s.drawDebug(screen)
	}
	s.drawHUD(screen)
}

// drawDebug 绘制所有在场对象的碰撞盒
func (s *GameplayScene) drawDebug(screen *ebiten.Image) {
	s.enemies.Each(func(e *enemy.Enemy) { strokeRect(screen, e.Bounds()) })
	s.playerBullets.Each(func(_ ecs.Handle, b *weapon.Bullet) { strokeRect(screen, b.Bounds()) })
	s.enemyBullets.Each(func(_ ecs.Handle, b *weapon.Bullet) { strokeRect(screen, b.Bounds()) })
	if s.player.Exists {
		strokeRect(screen, s.player.Bounds())
	}

	info := fmt.Sprintf("FPS %.0f  t=%.0f\nenemies %d/%d  bullets %d  particles %d\nspawned %d  pending %d",
		ebiten.ActualFPS(), s.clock.Now(),
		s.enemies.Active(), s.enemies.Cap(), s.bullets.Active(), s.particles.Active(),
		s.spawner.Spawned(), s.spawner.Pending())
	ebitenutil.DebugPrintAt(screen, info, 2, 20)
}

// drawHUD 分数、剩余生命和结束提示
func (s *GameplayScene) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d  HI %d", s.state.Score, s.state.HighScore), 8, 4)

	h := int(s.cfg.Playfield.Height)
	w := int(s.cfg.Playfield.Width)
	if !s.state.GameOver {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", s.state.Lives), 16, h-20)
		return
	}

	vector.DrawFilledRect(screen, float32(w/2-50), float32(h/2-14), 100, 28, gameOverColor, false)
	ebitenutil.DebugPrintAt(screen, "GAME OVER", w/2-27, h/2-10)
	ebitenutil.DebugPrintAt(screen, "press T", w/2-21, h/2+16)
}

func fillActor(screen *ebiten.Image, a *components.Actor, c color.Color) {
	fillCentered(screen, a.X, a.Y, a.Width, a.Height, c)
}

func fillCentered(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h), c, false)
}

func strokeRect(screen *ebiten.Image, r components.Rect) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, debugColor, false)
}
