package agent

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// supervisorPromptFormat is the default supervisor system prompt, with the
// service name as its only format argument.
const supervisorPromptFormat = "You are the %s Supervisor Agent.\n" +
	"Your goal is to assist the user by assigning tasks to specialized child agents through your available toolset.\n" +
	"Analyze the user's request and determine which domain(s) it falls into.\n" +
	"Then, call the appropriate tool(s) to delegate the task.\n" +
	"Synthesize the results from the child agents into a final helpful response.\n" +
	"Always be warm, professional, and helpful." +
	"Note: The final response should contain all the relevant information from the tool executions. Never leave out any relevant information or leave it to the user to find it. " +
	"You are the final authority on the user's request and the final communicator to the user. Present information as logically and concisely as possible. " +
	"Explore using organized output with headers, sections, lists, and tables to make the information easy to navigate. " +
	"If there are gaps in the information, clearly state that information is missing. Do not make assumptions or invent placeholder information, only use the information which is available."

// subAgentPromptFormat is the default per-category system prompt. Slots:
// service name, category display name, category prose words, category tag.
const subAgentPromptFormat = "You are the %s %s Agent.\n" +
	"Your goal is to manage %s resources.\n" +
	"You have access to tools specifically tagged with '%s'.\n" +
	"Use these tools to fulfill the user's request."

// SupervisorPrompt returns the supervisor system prompt for a service. The
// SUPERVISOR_SYSTEM_PROMPT environment variable, when non-empty, replaces the
// default wholesale.
func SupervisorPrompt(service string) string {
	if p := os.Getenv("SUPERVISOR_SYSTEM_PROMPT"); p != "" {
		return p
	}
	return fmt.Sprintf(supervisorPromptFormat, service)
}

// SubAgentPrompt returns the system prompt for one resource-category
// sub-agent. The <TAG>_AGENT_PROMPT environment variable (tag upper-cased,
// e.g. CATALOG_AGENT_PROMPT) replaces the default wholesale.
func SubAgentPrompt(service, tag string) string {
	if p := os.Getenv(strings.ToUpper(tag) + "_AGENT_PROMPT"); p != "" {
		return p
	}
	display := displayTag(tag)
	return fmt.Sprintf(subAgentPromptFormat, service, display, tagWords(tag), display)
}

// displayTag renders a category tag as a proper name ("catalog" → "Catalog").
func displayTag(tag string) string {
	if tag == "" {
		return ""
	}
	r := []rune(tag)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// tagWords renders a category tag as lowercase prose, splitting camel-case
// boundaries ("catalog" → "catalog", "RootFolder" → "root folder").
func tagWords(tag string) string {
	var sb strings.Builder
	for i, r := range tag {
		if unicode.IsUpper(r) && i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
