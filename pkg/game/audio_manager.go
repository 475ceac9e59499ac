package game

import (
	"encoding/binary"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文的采样率
const SampleRate = 44100

// Sound 音效标识
type Sound int

const (
	// SoundExplosion 敌机或玩家被击毁
	SoundExplosion Sound = iota
	// SoundShot 玩家射击
	SoundShot
	soundCount
)

// 同一音效两次播放的最小间隔，避免同一帧多次爆炸叠加爆音
const minSoundGap = 40 * time.Millisecond

// AudioManager 音频管理器
//
// 没有音频资源文件，所有音效在创建时合成为 16 位立体声 PCM。
// 音量和开关从 SettingsManager 读取，每次播放时生效。
type AudioManager struct {
	context  *audio.Context
	settings *SettingsManager
	buffers  [soundCount][]byte
	last     [soundCount]*audio.Player
}

// NewAudioManager 创建音频管理器
// context 为 nil 时所有播放都是空操作（无头模拟和测试使用）
func NewAudioManager(context *audio.Context, settings *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:  context,
		settings: settings,
	}
	if context == nil {
		return am
	}
	rate := context.SampleRate()
	am.buffers[SoundExplosion] = synthExplosion(rate)
	am.buffers[SoundShot] = synthShot(rate)
	log.Printf("[AudioManager] Synthesized %d sounds at %d Hz", soundCount, rate)
	return am
}

// Play 播放音效，返回是否真正开始播放
func (am *AudioManager) Play(s Sound) bool {
	if am == nil || am.context == nil || s < 0 || s >= soundCount {
		return false
	}
	volume := 1.0
	if am.settings != nil {
		settings := am.settings.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}
	if last := am.last[s]; last != nil && last.IsPlaying() && last.Position() < minSoundGap {
		return false
	}

	player := am.context.NewPlayerFromBytes(am.buffers[s])
	player.SetVolume(volume)
	player.Play()
	am.last[s] = player
	return true
}

// synthExplosion 衰减的白噪声，约 0.45 秒
func synthExplosion(rate int) []byte {
	n := rate * 45 / 100
	// 固定种子，每次合成结果一致
	rng := rand.New(rand.NewSource(1))
	samples := make([]float64, n)
	smooth := 0.0
	for i := range samples {
		t := float64(i) / float64(rate)
		// 简单低通让噪声更沉闷
		smooth += (rng.Float64()*2 - 1 - smooth) * 0.35
		samples[i] = smooth * math.Exp(-t*7) * 0.9
	}
	return encodePCM(samples)
}

// synthShot 下滑音调的方波，约 0.07 秒
func synthShot(rate int) []byte {
	n := rate * 7 / 100
	samples := make([]float64, n)
	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(rate)
		freq := 1400 - 9000*t
		phase += freq / float64(rate)
		v := 0.25
		if math.Mod(phase, 1) >= 0.5 {
			v = -0.25
		}
		samples[i] = v * (1 - float64(i)/float64(n))
	}
	return encodePCM(samples)
}

// encodePCM 把 [-1, 1] 的单声道采样编码为 16 位小端立体声
func encodePCM(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = min(max(s, -1), 1)
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}
