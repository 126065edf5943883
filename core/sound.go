package core

// SoundType identifies a fire-and-forget sound cue emitted by the simulation
type SoundType int

const (
	SoundDig                SoundType = iota // Player carved earth
	SoundPlayerSquirt                        // Water squirt fired
	SoundSonar                               // Sonar ping
	SoundGotGoodie                           // Gold, water or sonar picked up
	SoundFoundOil                            // Barrel collected
	SoundFallingRock                         // Boulder starts falling
	SoundProtesterYell                       // Protester shouts at player
	SoundProtesterAnnoyed                    // Protester hit but still standing
	SoundProtesterGiveUp                     // Protester starts leaving
	SoundProtesterFoundGold                  // Protester took a bribe
	SoundFinishedLevel                       // All barrels collected
	SoundPlayerGiveUp                        // Player died
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	"dig", "squirt", "sonar", "goodie", "oil", "falling_rock",
	"yell", "annoyed", "give_up", "found_gold", "finished_level", "player_give_up",
}

func (s SoundType) String() string {
	if s >= 0 && s < SoundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}
