package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"multichat/internal/entities"
)

func TestClassify(t *testing.T) {
	history := []entities.ConversationEntry{{Text: "tell me something", Platform: entities.WhatsApp}}

	tests := []struct {
		name   string
		text   string
		recent []entities.ConversationEntry
		want   Category
	}{
		{name: "greeting", text: "hello", want: CategoryGreeting},
		{name: "greeting is case and space insensitive", text: "  HeLLo there ", want: CategoryGreeting},
		{name: "greeting must lead", text: "well hello", want: CategoryContextual},
		{name: "identity", text: "who are you", want: CategoryIdentity},
		{name: "weather", text: "what's the weather", want: CategoryWeather},
		{name: "greeting beats weather", text: "hey, what's the weather", want: CategoryGreeting},
		{name: "time", text: "what time is it", want: CategoryTime},
		{name: "help", text: "i have a problem", want: CategoryHelp},
		{name: "food", text: "i am hungry", want: CategoryFood},
		{name: "shopping", text: "i want to buy shoes", want: CategoryShopping},
		{name: "tech", text: "my phone is slow", want: CategoryTech},
		{name: "travel", text: "planning a trip", want: CategoryTravel},
		{name: "learning", text: "teach me spanish", want: CategoryLearning},
		{name: "entertainment", text: "i am bored", want: CategoryEntertainment},
		{name: "health", text: "need a workout plan", want: CategoryHealth},
		{name: "work", text: "my job is hard", want: CategoryWork},
		{name: "finance", text: "how to budget", want: CategoryLearning},
		{name: "finance plain", text: "investing money", want: CategoryFinance},
		{name: "farewell", text: "goodbye friend", want: CategoryFarewell},
		{name: "thanks is a farewell", text: "thanks", recent: history, want: CategoryFarewell},
		{name: "follow-up yes", text: "yes please", recent: history, want: CategoryFollowUpYes},
		{name: "follow-up okay", text: "okay", recent: history, want: CategoryFollowUpYes},
		{name: "follow-up no", text: "nope", recent: history, want: CategoryFollowUpNo},
		{name: "follow-up not really", text: "not really", recent: history, want: CategoryFollowUpNo},
		{name: "yes without history", text: "yes", want: CategoryContextual},
		{name: "question", text: "is it real?", want: CategoryQuestion},
		{name: "emotional negative", text: "i feel sad", want: CategoryEmotionalNegative},
		{name: "emotional positive", text: "i am so excited", want: CategoryEmotionalPositive},
		{name: "compliment", text: "you are smart", want: CategoryCompliment},
		{name: "joke", text: "tell me a joke", want: CategoryJoke},
		{name: "science", text: "any science fact", want: CategoryScience},
		{name: "contextual", text: "purple elephants", want: CategoryContextual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text, tt.recent))
		})
	}
}

func TestEveryCategoryHasTemplates(t *testing.T) {
	for _, c := range []Category{
		CategoryGreeting, CategoryIdentity, CategoryWeather, CategoryTime, CategoryHelp,
		CategoryFood, CategoryShopping, CategoryTech, CategoryTravel, CategoryLearning,
		CategoryEntertainment, CategoryHealth, CategoryWork, CategoryFinance, CategoryFarewell,
		CategoryFollowUpYes, CategoryFollowUpNo, CategoryQuestion, CategoryEmotionalNegative,
		CategoryEmotionalPositive, CategoryCompliment, CategoryJoke, CategoryScience, CategoryContextual,
	} {
		assert.NotEmpty(t, Templates(c), c)
	}
}

func TestIsAcknowledgment(t *testing.T) {
	assert.True(t, IsAcknowledgment(" Sure "))
	assert.True(t, IsAcknowledgment("alright then"))
	assert.False(t, IsAcknowledgment("maybe"))
}
