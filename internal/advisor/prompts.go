package advisor

// Prompt templates sent to the advisory model. Everything except the
// price range expects a plain-text completion.

const descriptionPromptTmpl = `Write a short, sales-ready description (2-3 sentences) for the following inventory item.

Product name: %s
Category: %s

Respond with the description text only. No markdown formatting. No conversational filler.`

const risksPromptTmpl = `You are an inventory analyst. Review the product list below and identify the top risks: items about to run out, overstocked items tying up capital, and prices that look wrong for their category.

Return a concise markdown report with one bullet per risk, most urgent first.

Product list:
%s`

const priceRangePromptTmpl = `Suggest a realistic retail price range in USD for the following product.

Product name: %s
Category: %s

Return JSON only. No markdown formatting. No conversational filler.

{"min": 0.0, "max": 0.0, "reasoning": "one short sentence"}`
