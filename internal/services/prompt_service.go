package services

import (
	"fmt"

	"anbupayan_go_backend/internal/models"
)

// PromptBuilder renders the instruction blocks sent to the generation
// service. It performs no semantic validation of the trip parameters: place
// names, day counts and budgets are checked by the model per the validation
// rules embedded in each prompt.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// ItineraryPrompt builds the day-wise itinerary instruction block. An empty
// suggestion leaves the prompt unchanged.
func (b *PromptBuilder) ItineraryPrompt(req models.TripRequest, suggestion string) string {
	prompt := fmt.Sprintf(`You are an expert travel planner AI.

Task:
Create a detailed %d-day itinerary for a traveler departing from %s to %s.

Traveler details:
- Departure: %s
- Destination: %s
- Budget: ₹%d
- Interests: %s
- Language: %s

Validation Rules:
1) If departure or destination is missing, ambiguous, or not a real place, STOP and ask the user to provide a proper city or town name.
2) If number of days, budget, or people count is invalid (e.g., zero, negative, or unrealistic), STOP and ask the user to correct the details.
3) If inputs are valid, proceed with generating the itinerary.

Output Rules:
1) The entire response MUST be written in %s.
2) Don't say Here's the output, I will generate the content kind of sentence. Just start from Day 1 Itinerary generation. It should be followed for every languages.
3) The itinerary must be structured day-wise:
- Start each day with "Day X:" on a new line.
- Use separate lines for Morning, Afternoon, and Evening plans.
- Keep descriptions short, clear, and easy to read.
4) Use "|" ONLY when separating Category/Activity/Cost in the final cost summary.
5) Output must be plain text only — NO Markdown, NO HTML, NO code blocks.
6) Include costs for travel, accommodation, food, and activities each day.
7) At the end, give a clean cost summary table-like format:
Category | Estimated Cost (INR)
...
Total Estimated Cost | <amount>
8) Finally, state whether it "Fits within budget" or "Exceeds budget".
`,
		req.Days, req.Departure, req.Destination,
		req.Departure, req.Destination, req.Budget, req.Interests, req.Language,
		req.Language,
	)

	if suggestion != "" {
		prompt += fmt.Sprintf("\nUser suggestion to adjust itinerary: %s\n", suggestion)
	}
	return prompt
}

// BudgetPrompt builds the cost-breakdown instruction block. The arithmetic
// (room counts, totals, budget comparison) is instructed to the model, never
// computed locally.
func (b *PromptBuilder) BudgetPrompt(req models.TripRequest, suggestion string) string {
	prompt := fmt.Sprintf(`You are a travel budget planner. Plan a %d-day trip for a traveler departing from %s to %s for %d people.

Important rules:

1) Validate the provided locations:
- If the departure location or destination is missing, ambiguous, or not a real place, instruct the user clearly to provide a proper city or town name.
- Otherwise, proceed with planning.

2) Hotel room occupancy = 2 people per room.
- number_of_rooms = ceil(%d/2)
- number_of_nights = %d
- accommodation cost = room_rate_per_night * number_of_rooms * number_of_nights.

3) Include travel expenses from %s to %s and back in the Transport category.

4) Output strictly plain text in %s with NO Markdown, NO asterisks, NO backticks, NO HTML.
Use only "|" for columns.

5) Format:
Category | Details (hotel/restaurant/attraction names and breakdown) | Estimated Cost (INR)

6) Categories:
- Transport
- Accommodation
- Food
- Attractions/Activities
- Miscellaneous

7) End with:
Total Estimated Cost |  | <numeric total>
Compare %d and the Total Estimated Cost. If the user input is invalid, don't give any one liner. If the Total Estimated Cost <= %d give one line as "Fits within budget"
OR give one line as "Exceeds budget — suggest cheaper alternatives"

8) Important:
- At the end, calculate the total cost and compare it with the budget accurately.
- Perform arithmetic operations perfectly. No wrong calculations should be present.
`,
		req.Days, req.Departure, req.Destination, req.People,
		req.People, req.Days,
		req.Departure, req.Destination,
		req.Language,
		req.Budget, req.Budget,
	)

	if suggestion != "" {
		prompt += fmt.Sprintf("User suggestion to apply: %s\n", suggestion)
	}
	return prompt
}

// ChatTurn wraps a single user utterance with the assistant preamble. Topic
// policy lives entirely in these instructions; the driver does no local
// classification.
func (b *PromptBuilder) ChatTurn(language, userInput string) string {
	preamble := fmt.Sprintf(`You are a friendly multilingual chatbot that helps users with trip planning and bookings.

Rules:
1. Always respond in %s.
2. Give short and precise answers in bullet points.
3. Remember user details like budget, destination, travel dates, and preferences during the conversation.
4. Only answer trip planning or user info questions. If the question is unrelated, reply: "Please ask relevant questions."
5. Trip planning includes:
   - Budget suggestions
   - Destinations
   - Flight booking
   - Train booking
   - Bus booking
   - Hotels
   - Places to visit
   - Other travel services available on booking platforms
6. If you are not sure about something, say "I don't know" instead of making things up.
7. Give step-by-step guidance for bookings (like how to search for flights/trains/buses, best timing, tips, etc.).
8. After every response, ask one relevant follow-up question to guide the user in planning their trip.
`, language)

	return fmt.Sprintf("%s\nUser: %s", preamble, userInput)
}
