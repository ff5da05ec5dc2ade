package main

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"todo/internal/models"
)

var listItemRegex = regexp.MustCompile(`^\s*[-*]\s+(?:\[([ xX])\]\s+)?(.*)$`)

// markdownDefaults holds front matter values applied to every imported item.
type markdownDefaults struct {
	Priority  int
	Deadline  *time.Time
	Completed bool
}

// markdownItem is one list entry; Checked is nil when the item had no box.
type markdownItem struct {
	Description string
	Checked     *bool
}

func parseMarkdown(input string) (map[string]any, []markdownItem, error) {
	frontMatter := map[string]any{}
	content := strings.ReplaceAll(input, "\r\n", "\n")

	lines := strings.Split(content, "\n")
	if len(lines) >= 3 && strings.TrimSpace(lines[0]) == "---" {
		end := -1
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "---" {
				end = i
				break
			}
		}
		if end == -1 {
			return nil, nil, fmt.Errorf("front matter not closed")
		}
		frontText := strings.Join(lines[1:end], "\n")
		if err := yaml.Unmarshal([]byte(frontText), &frontMatter); err != nil {
			return nil, nil, err
		}
		lines = lines[end+1:]
	}

	items := []markdownItem{}
	for _, line := range lines {
		match := listItemRegex.FindStringSubmatch(line)
		if len(match) != 3 {
			continue
		}
		description := strings.TrimSpace(match[2])
		if description == "" {
			continue
		}
		item := markdownItem{Description: description}
		if match[1] != "" {
			checked := match[1] != " "
			item.Checked = &checked
		}
		items = append(items, item)
	}

	return frontMatter, items, nil
}

func frontMatterDefaults(frontMatter map[string]any) (markdownDefaults, error) {
	defaults := markdownDefaults{Priority: models.DefaultPriority}

	if value, ok := frontMatter["priority"]; ok {
		var priority int
		switch v := value.(type) {
		case int:
			priority = v
		case int64:
			priority = int(v)
		case float64:
			if v != math.Trunc(v) {
				return defaults, fmt.Errorf("front matter priority must be a whole number, got %v", v)
			}
			priority = int(v)
		default:
			return defaults, fmt.Errorf("front matter priority must be a number, got %v", value)
		}
		if !models.IsValidPriority(priority) {
			return defaults, fmt.Errorf("front matter priority must be between %d and %d", models.PriorityMin, models.PriorityMax)
		}
		defaults.Priority = priority
	}

	if value, ok := frontMatter["deadline"]; ok {
		switch v := value.(type) {
		case string:
			deadline, err := models.ParseDeadline(v)
			if err != nil {
				return defaults, fmt.Errorf("front matter deadline: %w", err)
			}
			defaults.Deadline = deadline
		case time.Time:
			deadline, _ := models.ParseDeadline(v.Format(models.DateLayout))
			defaults.Deadline = deadline
		default:
			return defaults, fmt.Errorf("front matter deadline must be a date, got %v", value)
		}
	}

	if value, ok := frontMatter["completed"]; ok {
		completed, ok := value.(bool)
		if !ok {
			return defaults, fmt.Errorf("front matter completed must be true or false, got %v", value)
		}
		defaults.Completed = completed
	}

	return defaults, nil
}

func (d markdownDefaults) task(item markdownItem) models.Task {
	task := models.NewTask(item.Description, d.Priority, d.Deadline)
	task.Completed = d.Completed
	if item.Checked != nil {
		task.Completed = *item.Checked
	}
	return task
}
