package usecases

// Placeholders understood by the renderer.
const (
	phPlatform    = "{platform}"
	phMessage     = "{message}"
	phCondition   = "{condition}"
	phTemperature = "{temperature}"
	phWeatherTip  = "{weather_tip}"
	phTime        = "{time}"
	phDate        = "{date}"
	phCuisine     = "{cuisine}"
	phFoodTip     = "{food_tip}"
	phShoppingTip = "{shopping_tip}"
	phDestination = "{destination}"
	phActivity    = "{activity}"
)

// Temperatures are drawn from [minTemperature, minTemperature+temperatureSpread).
const (
	minTemperature    = 15
	temperatureSpread = 15
)

var WeatherConditions = []string{
	"sunny ☀️",
	"cloudy ⛅",
	"rainy 🌧️",
	"partly cloudy 🌤️",
	"clear skies 🌤️",
}

var cuisines = []string{
	"Italian 🍝",
	"Chinese 🥢",
	"Mexican 🌮",
	"Indian 🍛",
	"Japanese 🍱",
	"Thai 🍜",
	"Mediterranean 🥗",
}

var foodTips = []string{
	"Try checking local reviews before deciding!",
	"Consider ordering something you've never tried before!",
	"Food delivery apps often have great deals.",
	"Local family-owned restaurants often have the best authentic flavors!",
}

var shoppingTips = []string{
	"Compare prices across different retailers",
	"Read reviews before making big purchases",
	"Check for seasonal sales and discounts",
	"Consider both online and in-store options",
}

var destinations = []string{
	"Paris 🗼",
	"Tokyo 🏯",
	"New York 🗽",
	"London 🎡",
	"Barcelona 🏖️",
	"Sydney 🏄‍♂️",
}

var activities = []string{
	"watching a highly-rated movie or series 🎬",
	"trying a new podcast or audiobook 🎧",
	"playing an engaging mobile game 🎮",
	"exploring music from different genres 🎵",
	"reading an interesting article or blog 📖",
}

const scienceOutro = "\n\nWhat aspect of science interests you most? I love sharing fascinating discoveries! 🔬"

var templates = map[Category][]string{
	CategoryGreeting: {
		"Hello! 👋 I'm your {platform} AI assistant. How can I help you today?",
		"Hi there! Welcome to {platform} AI support. What would you like to know?",
		"Hey! Great to see you on {platform}. I'm here to assist you with anything you need.",
		"Good to meet you! I'm your intelligent {platform} assistant. What brings you here today?",
	},
	CategoryIdentity: {
		`I'm an advanced AI assistant integrated with {platform}! I can help you with:
• Answering questions on various topics
• Providing personalized recommendations
• Weather and time information
• General conversation and advice
• Problem-solving assistance
• Learning and educational support
• And much more! What specific help do you need? 🤖`,
	},
	CategoryWeather: {
		`Current weather conditions show {condition} with a temperature around {temperature}°C.
{weather_tip}

Would you like tips for activities suitable for this weather?`,
	},
	CategoryTime: {
		`📅 Current time: {time}
📆 Today's date: {date}

Is there anything specific you need help with regarding scheduling or time management?`,
	},
	CategoryHelp: {
		`I'm here to help! 🆘 Could you tell me more about what specific challenge you're facing?

I can assist with:
• Technical questions and troubleshooting 🔧
• General information and research 📚
• Personal recommendations 💡
• Problem-solving strategies 🎯
• Learning new topics 📖

What area would you like help with?`,
	},
	CategoryFood: {
		`Feeling hungry? 🍽️ I'd recommend trying some {cuisine} today! {food_tip}

What type of cuisine are you in the mood for? I can suggest specific dishes or help you find great places nearby! 😋`,
	},
	CategoryShopping: {
		`Shopping time! 🛍️ {shopping_tip}.

What are you looking to buy? I can help you:
• Find the best deals and discounts 💰
• Compare different options 📊
• Suggest trusted retailers 🏪
• Provide buying tips and advice 💡

Tell me more about what you're shopping for!`,
	},
	CategoryTech: {
		`Tech questions are my specialty! 💻📱

I can help with:
• Troubleshooting common issues 🔧
• Software and app recommendations 📲
• Device comparisons and reviews 📊
• Setup and configuration guides ⚙️
• Security and privacy tips 🔒
• Performance optimization 🚀

What specific tech challenge can I assist you with today?`,
	},
	CategoryTravel: {
		`Travel planning is exciting! ✈️ {destination} is amazing this time of year!

I can help you with:
• Destination recommendations 🌍
• Travel tips and advice 🎒
• Budget planning 💰
• Best times to visit 📅
• Local attractions and activities 🎯
• Packing suggestions 👜

Where are you thinking of going? What type of experience are you looking for? 🗺️`,
	},
	CategoryLearning: {
		`I love helping people learn new things! 📚✨

I can help you:
• Explain complex concepts simply 🧠
• Provide step-by-step tutorials 📝
• Suggest learning resources 📖
• Create study plans 📅
• Answer specific questions ❓
• Share practical examples 💡

What topic interests you? Knowledge is power, and I'm here to help you unlock it! 🚀`,
	},
	CategoryEntertainment: {
		`Looking for some entertainment? 🎉 I suggest {activity}!

I can recommend:
• Movies and TV shows 📺
• Music and podcasts 🎶
• Games and apps 🕹️
• Books and articles 📚
• Fun activities to try 🎨

What type of entertainment are you in the mood for?`,
	},
	CategoryHealth: {
		`Great that you're thinking about health! 💪

I can provide general wellness tips like:
• Simple exercise routines 🏃‍♂️
• Healthy eating suggestions 🥗
• Stress management techniques 🧘‍♀️
• Sleep improvement tips 😴
• Motivation and goal-setting 🎯

Remember: For specific medical concerns, always consult with healthcare professionals! 👩‍⚕️

What aspect of health and wellness interests you most?`,
	},
	CategoryWork: {
		`Work and productivity - important topics! 💼

I can help with:
• Time management strategies ⏰
• Productivity tips and tools 📈
• Career advice and development 📊
• Work-life balance suggestions ⚖️
• Goal setting and planning 🎯
• Communication skills 🗣️

What specific work challenge would you like help with? Let's boost your productivity! 🚀`,
	},
	CategoryFinance: {
		`Financial topics are crucial! 💰

I can share general tips about:
• Budgeting strategies 📊
• Saving money techniques 🏦
• Basic investment concepts 📈
• Cost comparison methods 💸
• Financial goal setting 🎯

Remember: For specific financial advice, consult with qualified financial professionals! 👨‍💼

What financial topic would you like to explore?`,
	},
	CategoryFarewell: {
		"Goodbye! 👋 It was great chatting with you on {platform}. Feel free to reach out anytime you need assistance. Have a wonderful day! 😊",
		"Thank you for chatting! 🌟 I'm always here on {platform} whenever you need help. Take care and have an amazing day! 🌈",
		"See you later! 👋 Don't hesitate to come back if you have more questions. Enjoy the rest of your day! ✨",
		"Thanks for the great conversation! 😊 I'm here 24/7 on {platform} for any future assistance. Have a fantastic day ahead! 🌞",
	},
	CategoryFollowUpYes: {
		"Excellent! 🌟 I'm glad I could help. Is there anything else you'd like to know or discuss? I'm here and ready to assist with whatever you need! 😊",
	},
	CategoryFollowUpNo: {
		"No problem at all! 👍 If you think of anything later, just let me know. I'm always here on {platform} ready to help whenever you need it! 💫",
	},
	CategoryQuestion: {
		"That's a great question! 🤔 Let me think about this... Based on what you're asking, there are several factors to consider. Could you provide a bit more context so I can give you the most helpful answer?",
		"Interesting question! 💭 I love when people are curious. To give you the best possible response, could you tell me a bit more about your specific situation or what prompted this question?",
		"Excellent question! 🎯 This is actually something many people wonder about. To provide you with the most accurate and useful information, what's your main goal or concern here?",
		"Great question! 🌟 I can definitely help with that. To make sure I give you exactly what you need, could you share a bit more detail about what you're looking for?",
	},
	CategoryEmotionalNegative: {
		"I'm sorry you're feeling that way. 💙 It's completely normal to have these feelings sometimes. Would you like to talk about what's bothering you? I'm here to listen and help however I can.",
		"That sounds really difficult. 🤗 Sometimes sharing what's on your mind can help. I'm here to listen without judgment and offer support if you'd like.",
		"I hear you, and I'm sorry you're going through this. 💜 Everyone faces challenges, and it's okay to feel overwhelmed sometimes. What's weighing on your mind?",
	},
	CategoryEmotionalPositive: {
		"That's wonderful to hear! 😊🎉 I love when people share positive energy. Your enthusiasm is contagious! What's making you so happy today?",
		"How amazing! 🌟 It sounds like things are going really well for you. I'd love to hear more about what's bringing you so much joy!",
		"That's fantastic! 🥳 Positive energy like yours makes my day brighter too. Tell me more about what's got you feeling so great!",
	},
	CategoryCompliment: {
		"Thank you so much! 😊 That really means a lot to me. I'm here to be as helpful as possible, and it's wonderful to know I'm succeeding. Is there anything else I can help you with today? 🌟",
	},
	CategoryJoke: {
		"Why don't scientists trust atoms? Because they make up everything! 😄 Hope that brought a smile to your face!",
		"What do you call a bear with no teeth? A gummy bear! 🐻 I know, I know... my jokes are pretty bear-y good! 😅",
		"Why did the scarecrow win an award? Because he was outstanding in his field! 🌾 Classic, right? 😄",
		"I told my computer a joke about UDP... but I'm not sure if it got it! 💻 Tech humor - it's a bit niche! 😅",
	},
	CategoryScience: {
		"Here's a fascinating fact: Octopuses have three hearts and blue blood! 🐙 Two hearts pump blood to their gills, while the third pumps blood to the rest of their body. Science is amazing!" + scienceOutro,
		"Did you know that honey never spoils? 🍯 Archaeologists have found edible honey in ancient Egyptian tombs that's over 3,000 years old! The low water content and acidic pH make it naturally antimicrobial." + scienceOutro,
		"Amazing space fact: A day on Venus is longer than its year! 🪐 Venus rotates so slowly that one day (243 Earth days) is longer than one orbit around the sun (225 Earth days)." + scienceOutro,
	},
	CategoryContextual: {
		`That's really interesting! "{message}" sounds like something worth exploring further. 🤔 Tell me more about your thoughts on this - I'd love to understand your perspective better and see how I can help!`,
		`I see what you mean about "{message}". 💭 This reminds me of similar topics I've discussed before. Based on that, I think the key factors to consider are usually context, timing, and personal goals. What's your specific situation here?`,
		`Good point about "{message}"! 🎯 This is actually a topic that can have many different angles depending on what you're looking for. Could you help me understand what outcome you're hoping for? That way I can give you more targeted advice.`,
		`Thanks for bringing up "{message}" - it's always great when people share their thoughts! 📋 To give you the most helpful response, I'd love to know: what prompted you to think about this? Are you looking for advice, information, or just want to discuss it?`,
		`"{message}" is definitely something worth discussing! 💡 I find that the best approach usually depends on the specific circumstances and what someone is trying to achieve. What's your main goal or concern here? I'm here to help however I can!`,
	},
}
