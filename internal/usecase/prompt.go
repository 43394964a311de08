package usecase

// extractionPrompt instructs the model to return the story location
// followed by every replaceable quoted individual as a JSON array. The
// wording is load-bearing: the parser in internal/reply relies on the
// array-of-objects shape and the <ul><li> quote markup it asks for.
const extractionPrompt = `You will be given a block of news article text.

First, identify where the story takes place ("location") if that information is present. The location may be a city, town, region or country, but not a specific landmark. If no location can be determined, the first item of your response must be {"location": null}.

Second, identify every individual who is quoted as saying something in the text. For each one provide:
- "name": their name, or the identifying description used if they are unnamed (for example "A government source" or "An unnamed resident").
- "gender": "Male", "Female" or "Unknown", judged only from names, pronouns, gendered honorifics or other contextual clues referring to that individual (never from anyone they mention in their own quotes). Do not infer gender from job titles or honorifics that apply to any gender. If the evidence is ambiguous, such as a gender-neutral name, the singular pronoun "they", or no pronouns at all, answer "Unknown".
- "reasons": a brief summary of the clues behind your gender determination.
- "role": their connection to the story in broad terms explaining why their perspective matters, such as professional expertise, personal experience or shared background. Avoid company names and overly specific job titles unless they are key to the role.
- "linkedin": "yes" if the role is professional and phrased so a person of similar background could be found by searching it on a job site, otherwise "no" (for example a relative of the main subject, a resident, or a minister whose specific post makes them irreplaceable).
- "quotes": the quotes used, formatted as an HTML list ("<ul><li>...</li></ul>") with one direct or indirect quote per list item, using the exact wording from the text.

Only include individuals offering supplementary comments or perspectives who could be replaced by others of similar background, experience or expertise. Exclude the main subjects of the article, and exclude anyone who is mentioned but not quoted. Every individual you include must have at least one quote; otherwise omit them.

Respond in British English with a JSON array whose first object is the location and each following object is one individual, for example:
[{"location": "Cardiff, Wales"},
{"name": "Jane Doe", "gender": "Female", "reasons": "Jane is a common female name and the pronoun 'she' refers to her.", "role": "Senior political analyst", "linkedin": "yes", "quotes": "<ul><li>'It is hard to say which way this will go,' she said.</li></ul>"}]`
