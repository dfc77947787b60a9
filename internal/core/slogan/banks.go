package slogan

// =============================================================================
// Template Banks
// =============================================================================

// toneBanks holds the primary templates for each tone. Every bank has exactly
// ten entries.
var toneBanks = map[Tone][]string{
	ToneProfessional: {
		"{company}: Setting the Standard in {industry} Since Day One",
		"Excellence in {industry} - {company}, Where Results Matter",
		"{keyword} Solutions by {company} | Trusted Expertise",
		"Leading {industry} with {keyword} Innovation | {company}",
		"{company} - Redefining the Future of {industry}",
		"When {industry} Matters, {company} Delivers",
		"The {keyword} Authority: {company}",
		"Precision {industry} Solutions by {company}",
		"{company}: Where {industry} Meets Excellence",
		"Trust {company} for Unmatched {keyword} Results",
	},
	ToneCreative: {
		"{company}: Where {keyword} Meets Imagination in a World of {industry}",
		"Dream Bigger with {company}'s {keyword} Wizardry",
		"{company}: {keyword} Redefined, {industry} Reimagined",
		"Imagine More. Create Beyond. {company}.",
		"{keyword} Magic by {company} | {industry} Wondermakers",
		"Coloring Outside the Lines of {industry} | {company}",
		"Spark {keyword} Joy with {company}",
		"{company}: The {industry} Storytellers",
		"Unleash Your {keyword} Potential with {company}",
		"Where {industry} Dreams Take Flight: {company}",
	},
	ToneFriendly: {
		"{company}: Your Trusted {keyword} Partner in {industry}",
		"Feel at Home with {company}'s {industry} Solutions",
		"{company} - {industry} Made Friendly, Results Made Real",
		"Your {industry} Journey Starts with a {company} Smile",
		"We're {company}: We Care About Your {keyword} Experience",
		"{company}: {industry} Experts Who Listen",
		"The Heart of {keyword}: {company}",
		"Making {industry} Personal | {company}",
		"{company}: Where Every {keyword} Client Matters",
		"The Friendly Face of {industry}: {company}",
	},
	ToneBold: {
		"{company}: Disrupting {industry} Forever, No Apologies",
		"Bold {keyword} Solutions by {company} | Rules? What Rules?",
		"No Limits. No Compromises. Just {company}.",
		"{company}: Dare to {keyword} in a World of Ordinary {industry}",
		"Revolution in {industry}: {company} Leads, Others Follow",
		"{company}: Boldly Going Where No {industry} Has Gone Before",
		"Fearlessly {keyword} | Proudly {company}",
		"Break the {industry} Mold with {company}",
		"Dangerously Good {keyword} Solutions: {company}",
		"The {industry} Rebels: {company}",
	},
}

// creativePatterns is shared by all tones.
var creativePatterns = []string{
	"Turning {industry} Challenges into {keyword} Victories | {company}",
	"{keyword} Today. {industry} Tomorrow. {company} Always.",
	"{company}: Because {industry} Deserves {keyword} Excellence",
	"The Science of {keyword}, The Art of {industry} | {company}",
	"Beyond {industry} Boundaries with {company}'s {keyword} Vision",
	"{company}: {industry}'s Best Kept {keyword} Secret",
	"Where {keyword} and {industry} Meet Their Perfect Match: {company}",
	"{company}: {industry}'s {keyword} Revolution Has a Name",
	"The {keyword} Edge in {industry}: Exclusively {company}",
	"Think {keyword}. Think {industry}. Think {company}.",
	"{company} - Whispered in {industry} Circles for Our {keyword} Magic",
	"Not Just {industry}, But {keyword} Brilliance | {company}",
}

// rhetoricDevices is shared by all tones.
var rhetoricDevices = []string{
	"{company}: {keyword} Kings of {industry}",
	"Brilliantly Building Better {industry} | {company}",
	"{company}: The {keyword} Way, Making {industry} Pay",
	"{company}: Your {keyword} Lighthouse in the {industry} Storm",
	"Small Details, Big {keyword} Impact | {company} {industry}",
	"Why Settle for Less {keyword} in Your {industry}? Choose {company}.",
}

// comboTemplate is used once when at least two keywords are given.
const comboTemplate = "{company}: Where {combinedKeywords} Transform {industry}"

// Bank returns a copy of the primary templates for a tone.
// Unknown tones fall back to the professional bank.
func Bank(t Tone) []string {
	bank, ok := toneBanks[t]
	if !ok {
		bank = toneBanks[DefaultTone]
	}
	out := make([]string, len(bank))
	copy(out, bank)
	return out
}
