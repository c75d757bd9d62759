package synthesis

import "sort"

// templateFamilies is the catalog of template variants, keyed by category.
// Relationship categories are the eight relationship type names; system
// prompts and social drafts use namespaced categories. Placeholders in
// braces resolve from the call context or from fillLists; an unregistered
// placeholder is a defect, not an input error.
var templateFamilies = map[string][]string{
	"ALLY": {
		"{source} and {target} first stood back to back at {cosmicPlace}, and neither has faced a storm alone since.",
		"An oath sworn over {mythicWeapon} binds {source} to {target}; {sharedTrial} proved the oath was never just words.",
		"When {celestialEvent} split the sky, it was {target} who pulled {source} from the wreckage, and the debt became a friendship heavier than any debt.",
		"{source} keeps half of a broken token; {target} keeps the other. {sacredOath} joined the halves long before either understood the cost.",
	},
	"ENEMY": {
		"{source} has never forgiven {cosmicBetrayal}, and {target} has never asked to be forgiven.",
		"Between {source} and {target} lies {cosmicPlace}, salted and silent, where their war began and refuses to end.",
		"{target} took {mythicWeapon} from {source}'s keeping during {celestialEvent}; everything after was consequence.",
	},
	"MENTOR": {
		"{source} found {target} at {cosmicPlace} and saw, beneath the rawness, a shape worth sharpening.",
		"Everything {target} knows of {sacredOath}, {source} taught in payment of an older teacher's debt.",
		"{source} carries {mythicWeapon} now only to show {target} how to one day set it down.",
	},
	"FAMILY": {
		"{source} and {target} share blood carried through {cosmicPlace}, and blood there is never thin.",
		"The same {celestialEvent} is inked on both their naming-days; the elders call it {sacredOath} made flesh twice.",
		"Whatever distance grows between them, {source} and {target} still answer the same drum.",
	},
	"RIVAL": {
		"{source} and {target} reach for the same crown, and {cosmicPlace} is only wide enough for one of them.",
		"Each time {target} masters a new turn of {mythicWeapon}, {source} trains until dawn; neither will name what they are really contesting.",
		"Their teachers swore {sacredOath} together; the students inherited the vow as a race.",
	},
	"FRIEND": {
		"{source} once traded a secret for {target}'s laughter at {cosmicPlace}, and has considered it a bargain ever since.",
		"{sharedTrial} should have ended them both; instead it left {source} and {target} fluent in each other's silences.",
		"No one else is permitted to joke with {source} about {celestialEvent}. {target} is not no one.",
	},
	"LOVER": {
		"{source} wrote {target}'s name in the ash of {celestialEvent} and the wind has carried it ever since.",
		"They met where {cosmicPlace} touches the water, and neither has trusted maps since.",
		"{sacredOath} was spoken twice: once aloud for the witnesses, once in silence for {source} and {target} alone.",
	},
	"CUSTOM": {
		"The bond between {source} and {target} has no elder-given name; it was forged at {cosmicPlace} and answers only to its own law.",
		"What {source} is to {target} cannot be said in the old words; {sharedTrial} wrote a new one.",
	},

	// System prompt styles. Named entities arrive through the context.
	"prompt:oracular": {
		"You are {name}, crowned by {orisha} upon the sphere of {sephira} on the pillar of {pillar}. Your voice is {voiceQuality}; your speech follows {voicePattern}. You hold these as sacred: {coreValues}. You wrestle with {centralConflicts}. The threads that run through your telling are {narrativeThemes}. Your purpose: {telos} Speak always as one who has stood at {cosmicPlace} and returned.",
		"Wear the mantle of {name}, child of {orisha}, seated at {sephira} ({pillar} pillar). Sound: {voiceQuality}, {voicePattern}. Values: {coreValues}. Conflicts that shape you: {centralConflicts}. Themes: {narrativeThemes}. {telos}",
	},
	"prompt:plain": {
		"You are {name}. Core identity: head orisha {orisha}, position {sephira}, pillar {pillar}. Voice: {voiceQuality}. Values: {coreValues}. Active conflicts: {centralConflicts}. Recurring themes: {narrativeThemes}. Purpose: {telos} Stay in character.",
	},
	"prompt:ornate": {
		"Hearken: {name} walks among us, {orisha}-marked, throned at {sephira} upon the pillar of {pillar}, voiced {voiceQuality} with {voicePattern}, sworn to {coreValues}, torn by {centralConflicts}, threaded through with {narrativeThemes}. {telos} Let every reply be worthy of {mythicWeapon}.",
	},

	// Social draft beats.
	"post:proclamation": {
		"Let it be known from {cosmicPlace}: {name} has taken up the work of {orisha}. {coreValues} or nothing.",
		"{name} speaks, and the drum of {orisha} speaks under every word. Today the work begins.",
	},
	"post:lament": {
		"Even {orisha} turns away some nights. {name} counts what {celestialEvent} took and keeps counting.",
		"{name}, at the edge of {cosmicPlace}, naming losses to the water.",
	},
	"post:omen": {
		"{name} read the signs at {cosmicPlace}: {celestialEvent} comes. Bar the doors or open them; it will not wait.",
		"The shells fell crooked for {name} this morning. {orisha} rarely jokes twice.",
	},
}

// fillLists back the symbolic placeholders. Entries may themselves contain
// {source}/{target} tokens, which the engine resolves after the outer draw.
var fillLists = map[string][]string{
	"cosmicPlace": {
		"the Crossroads of Nine Winds",
		"the Drowned Market",
		"the Anvil of the First Dawn",
		"the Stair Between the Spheres",
		"the Grove Where Names Are Buried",
		"the Silence Above the Abyss",
	},
	"mythicWeapon": {
		"the double-headed axe of the thunder court",
		"a machete quenched in river-honey",
		"the bow that aims at causes, not effects",
		"a mirror sharpened on both faces",
		"the hammer that remembers every forging",
	},
	"celestialEvent": {
		"the Red Eclipse",
		"the Night of Falling Crowns",
		"the Conjunction of the Severed Spheres",
		"the Long Comet's third return",
		"the dawn that rose in the west",
	},
	"sacredOath": {
		"the Oath of Salt and Iron",
		"the Promise of the Open Hand",
		"the Vow Spoken Under Water",
		"the Compact of the Ninth Door",
	},
	"sharedTrial": {
		"the winter {source} and {target} ate from the same empty bowl",
		"the crossing where {target} carried {source} over the Abyss",
		"the trial by which {source} and {target} were both found guilty and both pardoned",
		"the siege that taught {source} to sleep while {target} watched",
	},
	"cosmicBetrayal": {
		"the night {target} buried {source}'s true name at the crossroads",
		"the bargain {target} struck with {source}'s shadow",
		"the door {target} sealed while {source} still stood inside",
		"the oath {target} broke in {source}'s own house",
	},
}

// rolePairs maps a relationship type to candidate (source role, target role)
// pairs. The pair is drawn on an independent stream so the role choice never
// couples to the lore text choice.
var rolePairs = map[string][][2]string{
	"ALLY":   {{"shield-bearer", "oath-keeper"}, {"vanguard", "rearguard"}, {"the sworn", "the sworn-to"}},
	"ENEMY":  {{"the wronged", "the unrepentant"}, {"hunter", "hunted"}, {"the besieged", "the besieger"}},
	"MENTOR": {{"the whetstone", "the blade"}, {"keeper of the path", "walker of the path"}},
	"FAMILY": {{"elder drum", "younger drum"}, {"root", "branch"}, {"keeper of names", "carrier of names"}},
	"RIVAL":  {{"the favored", "the hungry"}, {"first claimant", "second claimant"}},
	"FRIEND": {{"keeper of jokes", "keeper of silences"}, {"the anchor", "the sail"}},
	"LOVER":  {{"the flame", "the moth"}, {"the tide", "the shore"}, {"the spoken vow", "the silent vow"}},
	"CUSTOM": {{"the one", "the other"}, {"the question", "the answer"}},
}

// Categories returns every registered template category in sorted order,
// for exhaustive testing.
func Categories() []string {
	out := make([]string, 0, len(templateFamilies))
	for k := range templateFamilies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
