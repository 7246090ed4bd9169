package cancel

import (
	"fmt"
	"strings"
)

// TemplateKind selects a cancellation email template.
type TemplateKind string

const (
	TemplateStandard  TemplateKind = "standard"
	TemplateRefund    TemplateKind = "refund"
	TemplatePause     TemplateKind = "pause"
	TemplateNegotiate TemplateKind = "negotiate"
)

const standardTemplate = `Subject: Subscription Cancellation Request - [Account Number]

Dear [Company] Support Team,

I am writing to request the cancellation of my subscription, effective immediately.

Account Information:
- Name: [Your Name]
- Email: [Your Email]
- Account/Subscription Number: [Account Number]
- Billing Address: [Your Address]

Please confirm receipt of this cancellation request and provide any necessary information regarding the cancellation process. If there are any final charges or refunds, please detail them in your response.

Thank you for your assistance.

Sincerely,
[Your Name]`

const refundTemplate = `Subject: Subscription Cancellation and Refund Request - [Account Number]

Dear [Company] Support Team,

I am writing to request the cancellation of my subscription and a refund for [specify reason: e.g., unused portion, service issues].

Account Information:
- Name: [Your Name]
- Email: [Your Email]
- Account/Subscription Number: [Account Number]
- Billing Address: [Your Address]

Reason for Cancellation and Refund Request:
[Clearly explain your reason for requesting a refund]

I would appreciate a refund of [amount] to be processed back to my original payment method. Please confirm receipt of this request and provide information on the expected timeline for processing.

Thank you for your understanding and assistance.

Sincerely,
[Your Name]`

const pauseTemplate = `Subject: Request to Pause Subscription - [Account Number]

Dear [Company] Support Team,

I am writing to request a temporary pause of my subscription.

Account Information:
- Name: [Your Name]
- Email: [Your Email]
- Account/Subscription Number: [Account Number]

I would like to pause my subscription from [start date] to [end date]. Please confirm if this is possible and if there are any fees or special procedures associated with pausing rather than canceling.

Thank you for your assistance.

Sincerely,
[Your Name]`

const negotiateTemplate = `Subject: Subscription Rate Review Request - [Account Number]

Dear [Company] Support Team,

I have been a loyal customer of [Company] for [time period], and I'm writing to inquire about available options for reducing my subscription rate.

Account Information:
- Name: [Your Name]
- Email: [Your Email]
- Account/Subscription Number: [Account Number]
- Current Plan: [Plan Details]
- Current Rate: [Current Rate]

I've noticed that [mention competitor offers or new customer rates if applicable]. Due to [budget constraints/changes in usage needs], I'm considering canceling my subscription, but I would prefer to remain a customer if we can find a more suitable rate.

Are there any loyalty discounts, annual payment options, or alternative plans that could help reduce my costs while maintaining the service?

I appreciate your consideration and look forward to your response.

Sincerely,
[Your Name]`

var templates = map[TemplateKind]string{
	TemplateStandard:  standardTemplate,
	TemplateRefund:    refundTemplate,
	TemplatePause:     pauseTemplate,
	TemplateNegotiate: negotiateTemplate,
}

// EmailTemplate returns the email template of the given kind with the
// service name filled in.
func EmailTemplate(kind TemplateKind, service string) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown template kind %q", kind)
	}
	return strings.ReplaceAll(tmpl, "[Company]", service), nil
}

// PhoneScript returns a step-by-step phone cancellation script for a service.
func PhoneScript(service string) string {
	return fmt.Sprintf(`Cancellation Phone Script for %[1]s

1. Call the customer service number
   - For %[1]s: %[2]s

2. Navigate the phone menu
   - Select options for 'account management' or 'cancellation'

3. When speaking with a representative:
   - "Hello, I'd like to cancel my %[1]s subscription."
   - Provide your account information when requested
   - Be polite but firm about your decision to cancel
   - If asked why: "I'm streamlining my subscriptions" or "It no longer fits my needs"
   - Decline offers to stay unless they're genuinely better

4. Confirmation
   - Ask for a cancellation confirmation number or email
   - Note the name of the representative you spoke with
   - Confirm the effective date of cancellation

5. Follow-up
   - Check your email for cancellation confirmation
   - Monitor your account to ensure no further charges`, service, PhoneNumber(service))
}
