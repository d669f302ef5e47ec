package usecases

import (
	"regexp"
	"strings"

	"multichat/internal/entities"
)

// Category is the intent bucket a message is narrowed to.
type Category string

const (
	CategoryGreeting          Category = "greeting"
	CategoryIdentity          Category = "identity"
	CategoryWeather           Category = "weather"
	CategoryTime              Category = "time"
	CategoryHelp              Category = "help"
	CategoryFood              Category = "food"
	CategoryShopping          Category = "shopping"
	CategoryTech              Category = "tech"
	CategoryTravel            Category = "travel"
	CategoryLearning          Category = "learning"
	CategoryEntertainment     Category = "entertainment"
	CategoryHealth            Category = "health"
	CategoryWork              Category = "work"
	CategoryFinance           Category = "finance"
	CategoryFarewell          Category = "farewell"
	CategoryFollowUpYes       Category = "follow_up_yes"
	CategoryFollowUpNo        Category = "follow_up_no"
	CategoryQuestion          Category = "question"
	CategoryEmotionalNegative Category = "emotional_negative"
	CategoryEmotionalPositive Category = "emotional_positive"
	CategoryCompliment        Category = "compliment"
	CategoryJoke              Category = "joke"
	CategoryScience           Category = "science"
	CategoryContextual        Category = "contextual"
)

// FollowUpWindow is how many of the latest entries are consulted for the follow-up signal.
const FollowUpWindow = 3

var (
	greetingPattern = regexp.MustCompile(`^(hi|hello|hey|good morning|good afternoon|good evening|sup|what's up)`)
	farewellPattern = regexp.MustCompile(`^(bye|goodbye|see you|talk later|thanks|thank you|thx)`)

	acknowledgmentTokens = []string{"yes", "no", "thanks", "okay", "sure", "alright"}
	affirmativeTokens    = []string{"yes", "sure", "ok", "okay"}
	negativeTokens       = []string{"no", "nope", "not really"}
)

type rule struct {
	category Category
	match    func(msg string) bool
}

func anyOf(keywords ...string) func(string) bool {
	return func(msg string) bool {
		return containsAny(msg, keywords)
	}
}

// rules are evaluated top to bottom; the first hit wins. The follow-up
// branches sit between farewell and question and are checked in Classify.
var rules = []rule{
	{CategoryGreeting, greetingPattern.MatchString},
	{CategoryIdentity, func(msg string) bool {
		return containsAny(msg, []string{"what", "who"}) && containsAny(msg, []string{"you", "this", "bot"})
	}},
	{CategoryWeather, anyOf("weather", "temperature", "forecast")},
	{CategoryTime, anyOf("time", "date", "today", "now")},
	{CategoryHelp, anyOf("help", "support", "problem", "issue")},
	{CategoryFood, anyOf("food", "restaurant", "eat", "hungry", "dinner", "lunch")},
	{CategoryShopping, anyOf("buy", "shop", "purchase", "store")},
	{CategoryTech, anyOf("phone", "computer", "tech", "app", "software", "device")},
	{CategoryTravel, anyOf("travel", "trip", "vacation", "holiday", "visit")},
	{CategoryLearning, anyOf("learn", "study", "explain", "understand", "teach", "how to")},
	{CategoryEntertainment, anyOf("movie", "music", "game", "fun", "entertainment", "bored")},
	{CategoryHealth, anyOf("health", "fitness", "exercise", "workout", "diet")},
	{CategoryWork, anyOf("work", "job", "productive", "career", "office")},
	{CategoryFinance, anyOf("money", "budget", "save", "invest", "finance", "cost")},
	{CategoryFarewell, farewellPattern.MatchString},
}

var lateRules = []rule{
	{CategoryQuestion, anyOf("?")},
	{CategoryEmotionalNegative, anyOf("sad", "upset", "frustrated", "angry", "stressed", "worried")},
	{CategoryEmotionalPositive, anyOf("happy", "excited", "great", "awesome", "amazing", "wonderful")},
	{CategoryCompliment, anyOf("good job", "well done", "impressive", "smart", "helpful", "perfect")},
	{CategoryJoke, anyOf("joke", "funny", "laugh", "humor", "haha", "lol")},
	{CategoryScience, anyOf("science", "fact", "research", "study", "discover")},
}

// Normalize lower-cases and trims text the way every predicate expects it.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsAcknowledgment reports whether the text carries one of the short
// acknowledgment tokens that can make it a follow-up.
func IsAcknowledgment(text string) bool {
	return containsAny(Normalize(text), acknowledgmentTokens)
}

// Classify narrows text to a single category. recent is the tail of the
// session's conversation log, excluding the message being classified.
func Classify(text string, recent []entities.ConversationEntry) Category {
	msg := Normalize(text)

	for _, r := range rules {
		if r.match(msg) {
			return r.category
		}
	}

	if len(recent) > 0 && containsAny(msg, acknowledgmentTokens) {
		if containsAny(msg, affirmativeTokens) {
			return CategoryFollowUpYes
		}
		if containsAny(msg, negativeTokens) {
			return CategoryFollowUpNo
		}
	}

	for _, r := range lateRules {
		if r.match(msg) {
			return r.category
		}
	}

	return CategoryContextual
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
