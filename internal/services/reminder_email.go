package services

import "fmt"

const ReminderEmailSubject = "🩺 Time for Your Breast Self-Exam"

// ReminderEmailHTML builds the reminder email body. appBaseURL points at the
// web frontend.
func ReminderEmailHTML(appBaseURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #FDF8F6;">
  <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">
    <div style="background: linear-gradient(135deg, #E8B4B8 0%%, #D4A5A5 100%%); border-radius: 16px 16px 0 0; padding: 32px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">Elara</h1>
      <p style="color: rgba(255,255,255,0.9); margin: 8px 0 0 0; font-size: 16px;">Your Health Companion</p>
    </div>
    <div style="background: #ffffff; padding: 32px; border-radius: 0 0 16px 16px;">
      <h2 style="color: #2D3748; margin: 0 0 16px 0; font-size: 22px;">It's Time for Your Monthly Self-Exam</h2>
      <p style="color: #4A5568; font-size: 16px; line-height: 1.6; margin: 0 0 24px 0;">
        This is your friendly reminder that it's the optimal time in your cycle to perform your breast self-examination.
        Regular self-exams help you understand what's normal for you and catch any changes early.
      </p>
      <div style="background: #F0FDF4; border-left: 4px solid #A7C4A0; padding: 16px; border-radius: 8px; margin: 0 0 24px 0;">
        <p style="color: #166534; margin: 0; font-size: 14px;">
          <strong>Best Practice:</strong> Perform your exam 7-10 days after your period ends, when breast tissue is least tender.
        </p>
      </div>
      <a href="%s/bse-check"
         style="display: inline-block; background: linear-gradient(135deg, #E8B4B8 0%%, #D4A5A5 100%%); color: #ffffff; text-decoration: none; padding: 16px 32px; border-radius: 12px; font-weight: 600; font-size: 16px;">
        Start Your Self-Exam →
      </a>
      <p style="color: #718096; font-size: 14px; line-height: 1.6; margin: 24px 0 0 0;">
        <strong>Important:</strong> If you notice any unusual changes during your exam, please consult with your healthcare provider.
        Early detection saves lives.
      </p>
    </div>
    <div style="text-align: center; padding: 24px;">
      <p style="color: #A0AEC0; font-size: 12px; margin: 0;">
        You're receiving this because you enabled reminders in Elara.<br>
        <a href="%s/settings" style="color: #E8B4B8;">Manage your preferences</a>
      </p>
    </div>
  </div>
</body>
</html>`, appBaseURL, appBaseURL)
}
