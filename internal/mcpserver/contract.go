package mcpserver

// TaskFormatContract describes the canonical GTD task line format that
// LLM consumers should follow when writing task lines into vault files.
const TaskFormatContract = `# GTD Task Format Contract

Every task line in a GTD vault file MUST follow this structure.

## Structure

` + "```" + `markdown
- [ ] Call the dentist @calls [[Health]] #task 📅2025-02-01 ⏱️15 🔥
- [x] Draft the proposal #task ✅2025-01-20
` + "```" + `

## Rules

1. **Checkbox grammar.** A task line is ` + "`" + `- [ ] text` + "`" + ` (open) or
   ` + "`" + `- [x] text` + "`" + ` (done). Any single character in the brackets other than
   a space counts as done. Leading indentation is allowed.
2. **The ` + "`" + `#task` + "`" + ` tag is required outside the inbox.** In
   ` + "`" + `inbox.md` + "`" + ` every checkbox line is a raw capture and needs no tag;
   everywhere else a checkbox line without ` + "`" + `#task` + "`" + ` is prose, not a task.
3. **Annotations** may appear anywhere after the description, in any order:
   - ` + "`" + `@context` + "`" + ` – where the action happens (calls, computer, errands, home)
   - ` + "`" + `[[Project Name]]` + "`" + ` – the project this action belongs to
   - ` + "`" + `📅YYYY-MM-DD` + "`" + ` due, ` + "`" + `⏳YYYY-MM-DD` + "`" + ` scheduled,
     ` + "`" + `🛫YYYY-MM-DD` + "`" + ` start, ` + "`" + `✅YYYY-MM-DD` + "`" + ` completion
   - ` + "`" + `⏱️N` + "`" + ` – time estimate in minutes
   - ` + "`" + `🔥` + "`" + ` high / ` + "`" + `💪` + "`" + ` medium / ` + "`" + `🚶` + "`" + ` low energy
   - ` + "`" + `⏫` + "`" + ` high / ` + "`" + `🔼` + "`" + ` medium / ` + "`" + `🔽` + "`" + ` low priority
   - ` + "`" + `👤Name` + "`" + ` – who the item is delegated to (waiting-for lists)
   - ` + "`" + `🔁 every week` + "`" + ` – recurrence rule
4. **Repeated annotations:** if a token kind appears twice, the last
   occurrence wins.
5. **Links** use ` + "`" + `[[wikilink]]` + "`" + `, ` + "`" + `[[target|display]]` + "`" + `, or
   ` + "`" + `[text](url)` + "`" + `. Only network-scheme URLs (http, https, ftp, mailto,
   tel, file) are external; relative paths like ` + "`" + `../notes/x.md` + "`" + ` are
   internal references.
6. **Capture is raw.** Items added via ` + "`" + `capture_inbox_item` + "`" + ` carry no
   annotations; those are added during triage.

## Example

` + "```" + `markdown
---
status: active
---

# Next Actions

## By Context

- [ ] Email Sarah about the Q3 report @computer [[Q3 Review]] #task 📅2025-02-03 ⏱️10
- [ ] Pick up the package @errands #task 🚶
` + "```" + `
`
