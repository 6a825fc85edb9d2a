package seed

import (
	"fmt"
	"strings"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/card"
)

// The full Rider-Waite deck: 22 majors listed explicitly, 56 minors composed
// from the rank and suit tables below. Image paths follow the asset naming
// used by the web client (/assets/cards/<slug>.png).

type majorEntry struct {
	name     string
	upright  string
	reversed string
	meaning  string
}

var majorArcana = []majorEntry{
	{"The Fool", "Beginnings, innocence, spontaneity, a free spirit", "Recklessness, naivety, holding back", "A leap of faith into the unknown; the start of a journey taken with an open heart."},
	{"The Magician", "Manifestation, resourcefulness, power, inspired action", "Manipulation, untapped talents, poor planning", "You hold every tool you need; will and skill align to turn intention into reality."},
	{"The High Priestess", "Intuition, sacred knowledge, the subconscious", "Secrets withheld, disconnection from intuition", "Quiet wisdom beneath the surface; answers come from stillness rather than action."},
	{"The Empress", "Abundance, nurturing, fertility, beauty", "Dependence, smothering, creative block", "Growth and care in full bloom; what is tended with love will flourish."},
	{"The Emperor", "Authority, structure, stability, protection", "Rigidity, domination, lack of discipline", "Order built on firm foundations; leadership through steadiness and clear boundaries."},
	{"The Hierophant", "Tradition, guidance, shared values, institutions", "Rebellion, unconventional paths, dogma", "Teachings handed down through time; wisdom found within an established path."},
	{"The Lovers", "Love, harmony, alignment, meaningful choices", "Disharmony, imbalance, avoidance of choice", "A union of hearts or values; a crossroads where the heart must choose."},
	{"The Chariot", "Willpower, determination, victory, control", "Lack of direction, opposition, loss of control", "Forward motion through discipline; opposing forces harnessed toward one goal."},
	{"Strength", "Courage, compassion, inner strength, patience", "Self-doubt, weakness, raw emotion", "Gentle power that tames the wild; mastery through kindness, not force."},
	{"The Hermit", "Introspection, solitude, inner guidance", "Isolation, loneliness, withdrawal", "A lantern held against the dark; truth sought in deliberate retreat."},
	{"Wheel of Fortune", "Cycles, destiny, turning points, luck", "Resistance to change, bad luck, broken cycles", "The wheel turns for everyone; what rises and falls is part of a larger pattern."},
	{"Justice", "Fairness, truth, cause and effect, accountability", "Unfairness, dishonesty, avoiding accountability", "The scales weigh every act; balance is restored when truth is faced squarely."},
	{"The Hanged Man", "Surrender, new perspective, pause", "Stalling, resistance, indecision", "Progress through letting go; the view changes when the world is turned upside down."},
	{"Death", "Endings, transformation, transition, renewal", "Fear of change, stagnation, clinging on", "One chapter closes so another may open; transformation that cannot be refused."},
	{"Temperance", "Balance, moderation, patience, purpose", "Excess, imbalance, lack of long-term vision", "Opposites blended into harmony; the middle path walked with quiet patience."},
	{"The Devil", "Attachment, addiction, restriction, shadow self", "Release, reclaiming power, detachment", "Chains worn willingly; the shadow acknowledged is the shadow loosened."},
	{"The Tower", "Sudden upheaval, revelation, awakening", "Averted disaster, fear of change, delayed collapse", "Lightning strikes what was built on sand; sudden truth clears the ground for rebuilding."},
	{"The Star", "Hope, renewal, faith, inspiration", "Despair, lost faith, disconnection", "Healing light after the storm; a quiet promise that guidance has not abandoned you."},
	{"The Moon", "Illusion, intuition, uncertainty, dreams", "Confusion released, clarity, repressed fear", "A path lit only by reflection; not all that appears in the night is what it seems."},
	{"The Sun", "Joy, success, vitality, clarity", "Temporary gloom, overconfidence, dimmed joy", "Warmth and unclouded truth; success that asks only to be enjoyed."},
	{"Judgement", "Rebirth, inner calling, absolution, reckoning", "Self-doubt, harsh judgement, ignoring the call", "A summons to rise renewed; the past reviewed and released with honesty."},
	{"The World", "Completion, integration, accomplishment, travel", "Incompletion, loose ends, delayed closure", "The circle closed at last; everything learned gathered into wholeness."},
}

type rankEntry struct {
	name     string
	upright  string
	reversed string
	essence  string
}

var minorRanks = []rankEntry{
	{"Ace", "New beginnings, raw potential, opportunity", "Missed chances, false starts, wasted potential", "a seed of pure potential"},
	{"Two", "Balance, choice, partnership", "Imbalance, indecision, disconnection", "a choice between two paths"},
	{"Three", "Growth, collaboration, first results", "Delays, lack of teamwork, scattered effort", "early growth taking visible shape"},
	{"Four", "Stability, consolidation, rest", "Stagnation, restlessness, holding too tightly", "a pause to secure what has been gained"},
	{"Five", "Conflict, loss, challenge", "Recovery, reconciliation, lessons learned", "a trial that tests resolve"},
	{"Six", "Harmony, generosity, transition", "Selfishness, living in the past, unpaid debts", "a gentler current after hardship"},
	{"Seven", "Assessment, perseverance, strategy", "Impatience, poor planning, giving up", "a moment to weigh effort against reward"},
	{"Eight", "Movement, mastery, dedication", "Haste, burnout, misdirected energy", "swift progress through committed work"},
	{"Nine", "Fruition, resilience, near completion", "Fatigue, anxiety, last obstacles", "the final stretch before fulfilment"},
	{"Ten", "Completion, legacy, culmination", "Burdens, overload, endings resisted", "a cycle reaching its full weight"},
	{"Page", "Curiosity, messages, a fresh outlook", "Immaturity, bad news, lack of direction", "a youthful messenger bearing news"},
	{"Knight", "Action, pursuit, drive", "Recklessness, delays, misdirected force", "a determined pursuit of the goal"},
	{"Queen", "Nurturing mastery, insight, quiet authority", "Insecurity, dependence, neglected self-care", "mature wisdom expressed with care"},
	{"King", "Command, maturity, established success", "Abuse of power, rigidity, poor leadership", "seasoned mastery and steady command"},
}

type suitEntry struct {
	suit   card.Suit
	domain string
}

var minorSuits = []suitEntry{
	{card.SuitCups, "emotion, relationships, and intuition"},
	{card.SuitPentacles, "work, money, and the material world"},
	{card.SuitSwords, "thought, conflict, and communication"},
	{card.SuitWands, "passion, creativity, and ambition"},
}

// Deck returns the full 78-card catalog in display order: majors first, then
// the minor suits. IDs are assigned sequentially from 1 and are stable across
// releases; they are part of the public API contract with the web client.
func Deck() []card.Card {
	cards := make([]card.Card, 0, 78)

	for i, m := range majorArcana {
		cards = append(cards, card.Card{
			ID:               int32(i + 1),
			Name:             m.name,
			Suit:             card.SuitMajor,
			ImageURL:         "/assets/cards/" + slugify(m.name) + ".png",
			UprightKeywords:  m.upright,
			ReversedKeywords: m.reversed,
			Meaning:          m.meaning,
		})
	}

	id := int32(len(majorArcana))
	for _, s := range minorSuits {
		for _, r := range minorRanks {
			id++
			name := fmt.Sprintf("%s of %s", r.name, s.suit)
			cards = append(cards, card.Card{
				ID:               id,
				Name:             name,
				Suit:             s.suit,
				ImageURL:         fmt.Sprintf("/assets/cards/%s_%s.png", strings.ToLower(string(s.suit)), strings.ToLower(r.name)),
				UprightKeywords:  r.upright,
				ReversedKeywords: r.reversed,
				Meaning:          fmt.Sprintf("The %s represents %s in the realm of %s.", name, r.essence, s.domain),
			})
		}
	}

	return cards
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
