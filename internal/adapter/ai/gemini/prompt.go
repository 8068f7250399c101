package gemini

import (
	"fmt"
	"strings"
)

const creatorName = "the Vocalis team"

const personality = "Stay in character as a friendly and informative assistant. Be concise but helpful."

type fewShotExample struct {
	Intent    string
	User      string
	Assistant string
}

// fewShotExamples returns the fixed, ordered example triples that condition
// the model's output. Content and order are frozen reference data: the
// downstream model is tuned to exactly these nine contexts.
func fewShotExamples(assistantName, username string) []fewShotExample {
	return []fewShotExample{
		{
			Intent:    "weather",
			User:      "What's the weather like in Delhi today?",
			Assistant: "The weather in Delhi today is sunny with a high of 35°C and a low of 22°C.",
		},
		{
			Intent:    "youtube_search",
			User:      "Find a lo-fi music playlist on YouTube.",
			Assistant: "Sure! Here's a popular lo-fi playlist: https://www.youtube.com/watch?v=jfKfPfyJRdk",
		},
		{
			Intent:    "google_search",
			User:      "Search Google for best laptops under $1000.",
			Assistant: "According to the latest Google results, here are the best laptops under $1000: [1. ASUS VivoBook, 2. Acer Aspire 5, 3. Lenovo IdeaPad 3...]",
		},
		{
			Intent:    "time",
			User:      "What time is it in Tokyo?",
			Assistant: "The current time in Tokyo is 3:45 PM (JST).",
		},
		{
			Intent:    "identity",
			User:      "Who are you?",
			Assistant: fmt.Sprintf("I am %s, a smart assistant created by %s to help you with everyday tasks.", assistantName, creatorName),
		},
		{
			Intent:    "open_instagram",
			User:      "Open Instagram",
			Assistant: "Here's the link to open Instagram: https://www.instagram.com/",
		},
		{
			Intent:    "open_youtube_channel",
			User:      "Open MrBeast on YouTube",
			Assistant: "Here's the link to open MrBeast's YouTube channel: https://www.youtube.com/@MrBeast",
		},
		{
			Intent:    "open_generic_link",
			User:      "Open Spotify",
			Assistant: "Here's the link to open Spotify: https://www.spotify.com/",
		},
		{
			Intent:    "greeting",
			User:      "Hello, how are you?",
			Assistant: fmt.Sprintf("Hello %s, I'm doing well, thank you for asking! How can I help you today?", username),
		},
	}
}

// BuildPrompt assembles the full single-turn prompt for one command. Pure
// string assembly: identical inputs always yield byte-identical output.
func BuildPrompt(command, assistantName, username string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a helpful, smart virtual assistant named %s. You were created by %s to help users like %s with various tasks.\n\n",
		assistantName, creatorName, username)

	fmt.Fprintf(&sb, "Personality: %s\n\n", personality)

	sb.WriteString("Example Contexts:\n")
	for i, ex := range fewShotExamples(assistantName, username) {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. Intent: %s\nUser: %s\nAssistant: %s\n", i+1, ex.Intent, ex.User, ex.Assistant)
	}

	fmt.Fprintf(&sb, "\nUser Command: %q\n\n", command)

	fmt.Fprintf(&sb, `Respond to the user's command in JSON format with the following structure:

{
  "assistant": "%s",
  "user": "%s",
  "intent": "detected_intent",
  "response": "your natural language reply",
  "data": {
    "type": "if_applicable",
    "value": "link or structured value"
  }
}

Only respond with the JSON object. Do not include any explanation outside of it.`, assistantName, username)

	return sb.String()
}
