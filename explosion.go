package main

// Explosion records a rocket that exploded during the last step.
type Explosion struct {
	Kind       RocketKind
	Pos        Pt
	Hue        float64
	NParticles int64
}

// Explode turns a rocket into debris. The sound is fired and forgotten, so
// a broken audio output can't change what happens to the world.
func (w *World) Explode(r *Rocket) {
	cue := CueSmall
	if r.Kind == KindBigRocket {
		cue = CueBig
	}
	if w.Sound != nil {
		w.Sound.Play(cue)
	}

	w.Flash = Flash{Hue: r.Hue, Alpha: w.FlashStart}

	var n int64
	if r.Kind == KindBigRocket {
		n = w.BurstCount * w.GlitterFactor
		for range n {
			w.Particles = append(w.Particles, w.NewGlitterParticle(r.Pos))
		}
	} else {
		n = w.BurstCount
		for range n {
			photo := r.Photo
			if w.ParticlePhotos == ParticlePhotosRandom {
				photo = w.RandomPhoto()
			}
			w.Particles = append(w.Particles, w.NewBurstParticle(r.Pos, r.Hue, photo))
		}
	}

	w.JustExploded = append(w.JustExploded, Explosion{
		Kind:       r.Kind,
		Pos:        r.Pos,
		Hue:        r.Hue,
		NParticles: n,
	})
}
